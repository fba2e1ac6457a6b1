package walks

import (
	"net/http"
	"time"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/platform/httpx"
	"dog-walk-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/walkrequests", func(wr chi.Router) {
		wr.Post("/", createRequestHandler(svc, log))

		// Feed de trabajo disponible
		wr.Get("/open", listOpenHandler(svc, log))

		wr.Get("/{requestID}", getRequestHandler(svc, log))
		wr.Get("/{requestID}/applications", listApplicationsHandler(svc, log))
		wr.Post("/{requestID}/applications", applyHandler(svc, log))
		wr.Post("/{requestID}/complete", completeHandler(svc, log))
		wr.Post("/{requestID}/cancel", cancelHandler(svc, log))
		wr.Post("/{requestID}/rating", rateHandler(svc, log))
	})

	r.Route("/api/applications/{applicationID}", func(ar chi.Router) {
		ar.Post("/accept", acceptHandler(svc, log))
		ar.Post("/reject", rejectHandler(svc, log))
	})
}

type openRequestResponse struct {
	RequestID       int64     `json:"request_id"`
	DogName         string    `json:"dog_name"`
	RequestedTime   time.Time `json:"requested_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	OwnerUsername   string    `json:"owner_username"`
}

type createRequestRequest struct {
	DogID           int64  `json:"dog_id"`
	RequestedTime   string `json:"requested_time"` // RFC3339
	DurationMinutes int    `json:"duration_minutes" minimum:"1" maximum:"1440"`
	Location        string `json:"location"`
}

type requestResponse struct {
	RequestID       int64         `json:"request_id"`
	DogID           int64         `json:"dog_id"`
	RequestedTime   time.Time     `json:"requested_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Location        string        `json:"location"`
	Status          RequestStatus `json:"status"`
}

type applyRequest struct {
	WalkerID int64 `json:"walker_id"`
}

type applicationResponse struct {
	ApplicationID int64             `json:"application_id"`
	RequestID     int64             `json:"request_id"`
	WalkerID      int64             `json:"walker_id"`
	Status        ApplicationStatus `json:"status"`
}

type rateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ratingResponse struct {
	RatingID      int64  `json:"rating_id"`
	ApplicationID int64  `json:"application_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// listOpenHandler godoc
// @Summary Pedidos de paseo abiertos
// @Description Solo pedidos con status open, con el nombre del perro y el username del dueño.
// @Tags walkrequests
// @Produce json
// @Success 200 {array} openRequestResponse
// @Failure 503 {string} string "service unavailable"
// @Router /api/walkrequests/open [get]
func listOpenHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListOpen(r.Context())
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]openRequestResponse, 0, len(items))
		for _, o := range items {
			out = append(out, openRequestResponse{
				RequestID:       o.RequestID,
				DogName:         o.DogName,
				RequestedTime:   o.RequestedTime,
				DurationMinutes: o.DurationMinutes,
				Location:        o.Location,
				OwnerUsername:   o.OwnerUsername,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createRequestHandler godoc
// @Summary Crear pedido de paseo
// @Tags walkrequests
// @Accept json
// @Produce json
// @Param payload body createRequestRequest true "requested_time en RFC3339"
// @Success 201 {object} requestResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "dog not found"
// @Router /api/walkrequests [post]
func createRequestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequestRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		at, err := time.Parse(time.RFC3339, req.RequestedTime)
		if err != nil {
			httpx.WriteError(w, log, errs.Invalid("requested_time must be RFC3339"))
			return
		}

		wr, err := svc.CreateRequest(r.Context(), CreateRequestInput{
			DogID:           req.DogID,
			RequestedTime:   at,
			DurationMinutes: req.DurationMinutes,
			Location:        req.Location,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toRequestResponse(wr))
	}
}

func getRequestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		wr, err := svc.GetRequest(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toRequestResponse(wr))
	}
}

func listApplicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		apps, err := svc.ListApplications(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]applicationResponse, 0, len(apps))
		for _, a := range apps {
			out = append(out, toApplicationResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// applyHandler godoc
// @Summary Postularse a un pedido
// @Tags walkrequests
// @Accept json
// @Produce json
// @Param requestID path int true "ID del pedido"
// @Param payload body applyRequest true "Paseador que se postula"
// @Success 201 {object} applicationResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "request not open / already applied"
// @Router /api/walkrequests/{requestID}/applications [post]
func applyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		var req applyRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		a, err := svc.Apply(r.Context(), id, req.WalkerID)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

// acceptHandler godoc
// @Summary Aceptar postulación
// @Description Acepta la postulación, rechaza las demás pending y pasa el pedido a accepted.
// @Tags applications
// @Produce json
// @Param applicationID path int true "ID de la postulación"
// @Success 200 {object} applicationResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "request already accepted"
// @Router /api/applications/{applicationID}/accept [post]
func acceptHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "applicationID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		a, err := svc.Accept(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func rejectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "applicationID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		a, err := svc.Reject(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

// completeHandler godoc
// @Summary Marcar paseo como completado
// @Tags walkrequests
// @Produce json
// @Param requestID path int true "ID del pedido"
// @Success 200 {object} requestResponse
// @Failure 409 {string} string "request not accepted / walk not finished"
// @Router /api/walkrequests/{requestID}/complete [post]
func completeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		wr, err := svc.Complete(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toRequestResponse(wr))
	}
}

func cancelHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		wr, err := svc.Cancel(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toRequestResponse(wr))
	}
}

// rateHandler godoc
// @Summary Calificar paseo
// @Tags walkrequests
// @Accept json
// @Produce json
// @Param requestID path int true "ID del pedido"
// @Param payload body rateRequest true "rating entre 1 y 5"
// @Success 201 {object} ratingResponse
// @Failure 400 {string} string "rating out of range"
// @Failure 409 {string} string "request not completed / already rated"
// @Router /api/walkrequests/{requestID}/rating [post]
func rateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "requestID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		var req rateRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		rt, err := svc.Rate(r.Context(), id, RateInput{Rating: req.Rating, Comment: req.Comment})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ratingResponse{
			RatingID:      rt.ID,
			ApplicationID: rt.ApplicationID,
			Rating:        rt.Rating,
			Comment:       rt.Comment,
		})
	}
}

func toRequestResponse(r Request) requestResponse {
	return requestResponse{
		RequestID:       r.ID,
		DogID:           r.DogID,
		RequestedTime:   r.RequestedTime,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		Status:          r.Status,
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ApplicationID: a.ID,
		RequestID:     a.RequestID,
		WalkerID:      a.WalkerID,
		Status:        a.Status,
	}
}
