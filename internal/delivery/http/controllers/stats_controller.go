package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// EndpointHitRequest is the request body for POST /hit.
type EndpointHitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// Validate implements Validator.
func (h EndpointHitRequest) Validate() []string {
	errs := helpers.CheckLength(nil, "app", &h.App, 1, 255, true)
	errs = helpers.CheckLength(errs, "uri", &h.URI, 1, 255, true)
	errs = helpers.CheckLength(errs, "ip", &h.IP, 1, 45, true)
	if h.Timestamp == "" {
		errs = append(errs, "Field: timestamp. Error: must not be blank. Value: null")
	} else if _, err := domain.ParseDateTime(h.Timestamp); err != nil {
		errs = append(errs, "Field: timestamp. Error: must match yyyy-MM-dd HH:mm:ss. Value: "+h.Timestamp)
	}
	return errs
}

// EndpointHitDto is the stored hit returned by POST /hit.
// swagger:model EndpointHitDto
type EndpointHitDto struct {
	ID        int64  `json:"id"`
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// HitSuccessResponse is the success response envelope for POST /hit (201).
type HitSuccessResponse struct {
	Data  EndpointHitDto    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StatsSuccessResponse is the success response envelope for GET /stats (200).
type StatsSuccessResponse struct {
	Data  []domain.ViewStats `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// StatsController serves the stats server endpoints.
type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// SaveHit godoc
// @Summary Record a request to an endpoint
// @Tags stats
// @Accept json
// @Produce json
// @Param body body EndpointHitRequest true "Hit"
// @Success 201 {object} controllers.HitSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /hit [post]
func (c *StatsController) SaveHit(w http.ResponseWriter, r *http.Request) {
	var req EndpointHitRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ts, _ := domain.ParseDateTime(req.Timestamp)
	hit := &domain.EndpointHit{App: req.App, URI: req.URI, IP: req.IP, Timestamp: ts}
	if err := c.Service.SaveHit(r.Context(), hit); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EndpointHitDto{
		ID:        hit.ID,
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: domain.FormatDateTime(hit.Timestamp),
	})
}

// GetStats godoc
// @Summary Hit counts per endpoint
// @Description Results are grouped by app and uri and ordered by hits, highest first.
// @Tags stats
// @Produce json
// @Param start query string true "yyyy-MM-dd HH:mm:ss"
// @Param end query string true "yyyy-MM-dd HH:mm:ss"
// @Param uris query []string false "URIs to count" collectionFormat(multi)
// @Param unique query bool false "Count distinct IPs only" default(false)
// @Success 200 {object} controllers.StatsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /stats [get]
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	start, err := requiredDateTime(r, "start")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	end, err := requiredDateTime(r, "end")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	unique, err := helpers.QueryBool(r, "unique")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	stats, err := c.Service.GetStats(r.Context(), domain.StatsQuery{
		Start:  start,
		End:    end,
		URIs:   helpers.QueryStrings(r, "uris"),
		Unique: unique != nil && *unique,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

func requiredDateTime(r *http.Request, name string) (t time.Time, err error) {
	v, err := helpers.QueryDateTime(r, name)
	if err != nil {
		return t, err
	}
	if v == nil {
		return t, domain.Validation("Incorrect data", "Field: "+name+". Error: is required. Value: null")
	}
	return *v, nil
}
