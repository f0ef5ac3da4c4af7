package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

const maxBodySize = 64 << 10

type ErrorResponse struct {
	Code          int                  `json:"code"`
	Message       string               `json:"message"`
	Fields        []FieldErrorResponse `json:"fields,omitempty"`
	MinPickupDate string               `json:"min_pickup_date,omitempty"`
}

type FieldErrorResponse struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidBody):
		return http.StatusBadRequest, e.ErrInvalidBody.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrUnknownField):
		return http.StatusBadRequest, e.ErrUnknownField.Error()
	case errors.Is(err, e.ErrInvalidFilter):
		return http.StatusBadRequest, e.ErrInvalidFilter.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOutOfStock):
		return http.StatusConflict, e.ErrOutOfStock.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrCheckoutNotOpen):
		return http.StatusConflict, e.ErrCheckoutNotOpen.Error()
	case errors.Is(err, e.ErrCheckoutInProgress):
		return http.StatusConflict, e.ErrCheckoutInProgress.Error()
	case errors.Is(err, e.ErrDraftFrozen):
		return http.StatusConflict, e.ErrDraftFrozen.Error()
	case errors.Is(err, e.ErrSessionConflict):
		return http.StatusConflict, e.ErrSessionConflict.Error()
	case errors.Is(err, e.ErrValidation):
		return http.StatusUnprocessableEntity, e.ErrValidation.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	resp := NewErrorResponse(code, msg)

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		resp.MinPickupDate = invalid.MinPickupDate
		for _, f := range invalid.Fields {
			resp.Fields = append(resp.Fields, FieldErrorResponse{Field: f.Field, Reason: f.Reason})
		}
	}

	WriteSuccess(w, code, resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// handleError логирует ошибку запроса и пишет ответ. 5xx пишутся как ошибки, остальное как предупреждения.
func handleError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	code, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%s: %d", op, code)
	} else {
		log.Warnf("%s: %d %s", op, code, err.Error())
	}
	WriteError(w, err)
}

// decodeJSON читает тело запроса в dst. Пустое тело возвращает io.EOF без обёртки.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return e.Wrap(err.Error(), e.ErrInvalidBody)
	}

	return nil
}

// parseBoolQuery разбирает необязательный булев параметр запроса. Отсутствие параметра даёт nil.
func parseBoolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI()+" "+name+"="+raw, e.ErrInvalidFilter)
	}
	return &v, nil
}
