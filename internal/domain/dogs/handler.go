package dogs

import (
	"net/http"

	"dog-walk-service/internal/platform/httpx"
	"dog-walk-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))
		dr.Post("/", createDogHandler(svc, log))
		dr.Get("/{dogID}", getDogHandler(svc, log))
	})
}

type dogListingResponse struct {
	DogName       string `json:"dog_name"`
	Size          Size   `json:"size"`
	OwnerUsername string `json:"owner_username"`
}

type createDogRequest struct {
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Size    Size   `json:"size" enums:"small,medium,large"`
}

type dogResponse struct {
	ID      int64  `json:"dog_id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Size    Size   `json:"size"`
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Todos los perros con su tamaño y el username del dueño.
// @Tags dogs
// @Produce json
// @Success 200 {array} dogListingResponse
// @Failure 503 {string} string "service unavailable"
// @Router /api/dogs [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]dogListingResponse, 0, len(items))
		for _, d := range items {
			out = append(out, dogListingResponse{
				DogName:       d.DogName,
				Size:          d.Size,
				OwnerUsername: d.OwnerUsername,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createDogHandler godoc
// @Summary Registrar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body createDogRequest true "Dueño, nombre y tamaño"
// @Success 201 {object} dogResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "owner not found"
// @Router /api/dogs [post]
func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			OwnerID: req.OwnerID,
			Name:    req.Name,
			Size:    req.Size,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// getDogHandler godoc
// @Summary Obtener perro
// @Tags dogs
// @Produce json
// @Param dogID path int true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 404 {string} string "dog not found"
// @Router /api/dogs/{dogID} [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "dogID")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:      d.ID,
		OwnerID: d.OwnerID,
		Name:    d.Name,
		Size:    d.Size,
	}
}
