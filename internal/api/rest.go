// Package api serves the admin HTTP shim: read-only circuit and proposal
// queries plus raw payload submission.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

const maxPayloadBytes = 1 << 20

type Handler struct {
	sm  *admin.StateMachine
	log *zap.Logger
}

func NewHandler(sm *admin.StateMachine, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sm: sm, log: log}
}

// NewHTTPHandler builds a router with every admin route registered.
func NewHTTPHandler(sm *admin.StateMachine, log *zap.Logger) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, NewHandler(sm, log))
	return r
}

func RegisterRoutes(r *mux.Router, h *Handler) {
	r.HandleFunc("/ping", h.handlePing).Methods("GET")

	r.HandleFunc("/admin/circuits", h.handleListCircuits).Methods("GET")
	r.HandleFunc("/admin/circuits/{id}", h.handleGetCircuit).Methods("GET")
	r.HandleFunc("/admin/proposals", h.handleListProposals).Methods("GET")
	r.HandleFunc("/admin/proposals/{id}", h.handleGetProposal).Methods("GET")

	// Body is a serialized CircuitManagementPayload.
	r.HandleFunc("/admin/submit", h.handleSubmit).Methods("POST")
}

func (h *Handler) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"msg": "pong from " + h.sm.NodeID()})
}

func (h *Handler) handleListCircuits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, err := intParam(q.Get("offset"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "", "offset must be a non-negative integer")
		return
	}
	limit, err := intParam(q.Get("limit"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "", "limit must be a non-negative integer")
		return
	}

	filter := q.Get("filter")
	circuits, pg, err := h.sm.ListCircuits(r.Context(), admin.CircuitFilter{
		Member: filter,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	link := r.URL.Path + "?"
	if filter != "" {
		link += "filter=" + url.QueryEscape(filter) + "&"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":   circuits,
		"paging": newPaging(pg, link),
	})
}

// paging is the navigation block returned with every circuit listing.
type paging struct {
	Current string `json:"current"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
	Total   int    `json:"total"`
	First   string `json:"first"`
	Prev    string `json:"prev"`
	Next    string `json:"next"`
	Last    string `json:"last"`
}

func newPaging(pg admin.Page, link string) paging {
	base := link + "limit=" + strconv.Itoa(pg.Limit) + "&offset="
	return paging{
		Current: base + strconv.Itoa(pg.Offset),
		Offset:  pg.Offset,
		Limit:   pg.Limit,
		Total:   pg.Total,
		First:   base + "0",
		Prev:    base + strconv.Itoa(pg.PrevOffset),
		Next:    base + strconv.Itoa(pg.NextOffset),
		Last:    base + strconv.Itoa(pg.LastOffset),
	}
}

func (h *Handler) handleGetCircuit(w http.ResponseWriter, r *http.Request) {
	c, err := h.sm.Circuit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListProposals(w http.ResponseWriter, r *http.Request) {
	props, err := h.sm.ListProposals(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  props,
		"total": len(props),
	})
}

func (h *Handler) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.sm.Proposal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, "", "payload too large")
		return
	}
	payload, err := proto.UnmarshalPayload(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "MalformedPayload", err.Error())
		return
	}
	res, err := h.sm.Submit(r.Context(), payload)
	if err != nil {
		h.writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"circuit_id": res.CircuitID,
		"status":     string(res.Status),
	})
}

var errNegative = errors.New("negative")

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// StatusCode maps an admin error kind to an HTTP status.
func StatusCode(err error) int {
	switch admin.KindName(err) {
	case "MalformedPayload", "InvalidCircuit":
		return http.StatusBadRequest
	case "InvalidSignature":
		return http.StatusUnauthorized
	case "UnauthorizedRequester":
		return http.StatusForbidden
	case "UnknownProposal", "UnknownCircuit":
		return http.StatusNotFound
	case "ProposalAlreadyExists", "CircuitExists", "HashMismatch", "MemberInUse", "CircuitInactive":
		return http.StatusConflict
	case "StorageFailure", "DisseminationFailure":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeAdminError(w http.ResponseWriter, err error) {
	h.writeError(w, StatusCode(err), admin.KindName(err), err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, kind, msg string) {
	body := map[string]string{"error": msg}
	if kind != "" {
		body["kind"] = kind
	}
	writeJSON(w, status, body)
	h.log.Debug("http error", zap.Int("status", status), zap.String("kind", kind), zap.String("error", msg))
}
