package walks

// RequestStatus
// @Enum open, accepted, completed, cancelled
type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// ApplicationStatus
// @Enum pending, accepted, rejected, completed
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationCompleted ApplicationStatus = "completed"
)

// Ciclo de vida lineal; completed y cancelled son terminales.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestOpen:     {RequestAccepted, RequestCancelled},
	RequestAccepted: {RequestCompleted, RequestCancelled},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestAccepted, RequestCompleted, RequestCancelled:
		return true
	default:
		return false
	}
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, t := range requestTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationCompleted:
		return true
	default:
		return false
	}
}

// Selected indica la postulación elegida por el dueño. Hay a lo sumo una por Request.
func (s ApplicationStatus) Selected() bool {
	return s == ApplicationAccepted || s == ApplicationCompleted
}
