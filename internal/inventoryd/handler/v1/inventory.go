// Package v1 implements the inventory service HTTP handlers.
package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/inventoryd/store"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

// InventoryHandler serves GET/POST /inventory on top of the store.
type InventoryHandler struct {
	store *store.Store
	log   *logrus.Logger
}

func NewInventoryHandler(s *store.Store, log *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{store: s, log: log}
}

// Get handles GET /inventory.
func (h *InventoryHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// Update handles POST /inventory.
//
// Responses mirror the service contract exactly: 200 with the updated
// mapping, 400 with {detail} when the result would be negative, 422 with a
// pydantic-style issue list when the payload fails schema validation.
func (h *InventoryHandler) Update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationError(bodyIssue("Invalid request body", "body_read")))
		return
	}

	req, issues := h.parseUpdate(body)
	if len(issues) > 0 {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: issues})
		return
	}

	snap, err := h.store.Apply(req.Item, req.Change)
	if err != nil {
		var rej *store.RejectionError
		if errors.As(err, &rej) {
			h.log.WithFields(logrus.Fields{"item": req.Item, "change": req.Change}).
				Warn("update rejected: would go negative")
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: rej.Error()})
			return
		}
		// Unknown item slipping past Recognizes means the policy changed
		// mid-request; report it the same way as schema validation.
		c.JSON(http.StatusUnprocessableEntity, validationError(h.enumIssue()))
		return
	}

	h.log.WithFields(logrus.Fields{"item": req.Item, "change": req.Change}).
		Info("inventory updated")
	c.JSON(http.StatusOK, snap)
}

// parseUpdate validates the raw body field by field so each failure can be
// reported with its own loc/msg/type, the way pydantic does.
func (h *InventoryHandler) parseUpdate(body []byte) (UpdateRequest, []ValidationIssue) {
	var req UpdateRequest
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		return req, []ValidationIssue{bodyIssue("Invalid JSON", "json_invalid")}
	}

	var issues []ValidationIssue

	rawItem, ok := fields["item"]
	switch {
	case !ok:
		issues = append(issues, fieldIssue("item", "Field required", "missing"))
	default:
		if err := json.Unmarshal(rawItem, &req.Item); err != nil {
			issues = append(issues, fieldIssue("item", "Input should be a valid string", "string_type"))
		} else if !h.store.Recognizes(req.Item) {
			issues = append(issues, h.enumIssue())
		}
	}

	rawChange, ok := fields["change"]
	switch {
	case !ok:
		issues = append(issues, fieldIssue("change", "Field required", "missing"))
	default:
		issues = append(issues, parseChange(rawChange, &req.Change)...)
	}

	return req, issues
}

func parseChange(raw json.RawMessage, out *int) []ValidationIssue {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return []ValidationIssue{fieldIssue("change", "Input should be a valid integer", "int_type")}
	}

	v, err := n.Int64()
	if err != nil {
		// Distinguish fractional numbers from plain garbage for clearer
		// model-facing error text.
		if _, ferr := n.Float64(); ferr == nil {
			return []ValidationIssue{fieldIssue("change",
				"Input should be a valid integer, got a number with a fractional part", "int_from_float")}
		}
		return []ValidationIssue{fieldIssue("change", "Input should be a valid integer", "int_parsing")}
	}

	*out = int(v)
	return nil
}

// enumIssue reports an item name outside the recognized set.
func (h *InventoryHandler) enumIssue() ValidationIssue {
	items := h.store.Items()
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("'%s'", it)
	}
	return fieldIssue("item",
		fmt.Sprintf("Input should be %s", strings.Join(quoted, " or ")), "enum")
}

func fieldIssue(field, msg, typ string) ValidationIssue {
	return ValidationIssue{Loc: []any{"body", field}, Msg: msg, Type: typ}
}

func bodyIssue(msg, typ string) ValidationIssue {
	return ValidationIssue{Loc: []any{"body"}, Msg: msg, Type: typ}
}

func validationError(issues ...ValidationIssue) ValidationErrorResponse {
	return ValidationErrorResponse{Detail: issues}
}
