package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"graphtrace/internal/core"
	"graphtrace/internal/http/payload"

	"go.uber.org/zap"
)

var (
	CreateGraph        = "POST /api/v1/graph"
	ReplaceGraph       = "PUT /api/v1/graph"
	AddToGraph         = "POST /api/v1/graph/{graphId}/entries"
	GetGraph           = "GET /api/v1/graph/{graphId}"
	ListGraphs         = "GET /api/v1/graphs"
	GetWalletGraph     = "GET /api/v1/wallet/{address}/graph"
	GetNode            = "GET /api/v1/node/{nodeId}"
	GetNodeConnections = "GET /api/v1/node/{nodeId}/connections"
	ApplyTag           = "POST /api/v1/tag"
	ListTags           = "GET /api/v1/tags"
	GetWalletProfile   = "GET /api/v1/wallet/{address}"
	SearchWallets      = "GET /api/v1/wallets/search"
	GetStats           = "GET /api/v1/stats"
)

const (
	defaultListLimit = 20
	defaultPageLimit = 50
)

type TraceHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracer           GraphService
}

func NewTraceHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, graphService GraphService) *TraceHandler {
	return &TraceHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracer:           graphService,
	}
}

func (h *TraceHandler) HandleCreateGraph(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateGraphRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create graph",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateGraph,
			"request_id", requestId)
		return
	}

	summary, err := h.tracer.CreateGraph(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, err, "Could not create graph", CreateGraph, requestId)
		return
	}

	resp := map[string]core.GraphSummary{
		"graph": summary,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *TraceHandler) HandleReplaceGraph(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateGraphRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not replace graph",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ReplaceGraph,
			"request_id", requestId)
		return
	}

	summary, err := h.tracer.ReplaceGraph(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, err, "Could not replace graph", ReplaceGraph, requestId)
		return
	}

	resp := map[string]core.GraphSummary{
		"graph": summary,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleAddToGraph(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	graphID, err := uintPath(r, "graphId")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update graph",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid graph id parameter",
			"error", err,
			"handler", AddToGraph,
			"request_id", requestId)
		return
	}

	var req payload.BatchRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update graph",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddToGraph,
			"request_id", requestId)
		return
	}

	result, err := h.tracer.AddToGraph(r.Context(), graphID, req.ToNodeInputs(), req.ToEdgeInputs())
	if err != nil {
		h.respondError(w, err, "Could not update graph", AddToGraph, requestId)
		return
	}

	resp := map[string]core.BatchResult{
		"result": result,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleGetGraph(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	graphID, err := uintPath(r, "graphId")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve graph",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid graph id parameter",
			"error", err,
			"handler", GetGraph,
			"request_id", requestId)
		return
	}

	values := r.URL.Query()
	opts := core.GraphOptions{
		IncludeWalletDetails: boolQuery(values, "includeWalletDetails"),
		IncludeTags:          boolQuery(values, "includeTags"),
	}

	view, err := h.tracer.GetGraph(r.Context(), graphID, opts)
	if err != nil {
		h.respondError(w, err, "Could not retrieve graph", GetGraph, requestId)
		return
	}

	resp := map[string]core.GraphView{
		"graph": view,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleListGraphs(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list graphs",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", ListGraphs, "request_id", requestId)
		return
	}

	opts := core.ListGraphsOptions{
		RootWalletAddress: values.Get("rootWalletAddress"),
	}
	if opts.Limit, err = intQuery(values, "limit", defaultListLimit); err == nil {
		opts.Offset, err = intQuery(values, "offset", 0)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list graphs",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query parameters", "error", err, "handler", ListGraphs, "request_id", requestId)
		return
	}

	graphs, err := h.tracer.ListGraphs(r.Context(), opts)
	if err != nil {
		h.respondError(w, err, "Could not list graphs", ListGraphs, requestId)
		return
	}

	resp := map[string][]core.GraphSummary{
		"graphs": graphs,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleGetWalletGraph(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address := r.PathValue("address")
	values := r.URL.Query()

	opts := core.RootGraphOptions{NodeType: values.Get("nodeType")}
	var err error
	if opts.Page, err = intQuery(values, "page", 1); err == nil {
		opts.Limit, err = intQuery(values, "limit", defaultPageLimit)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve wallet graph",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query parameters", "error", err, "handler", GetWalletGraph, "request_id", requestId)
		return
	}

	view, err := h.tracer.GetGraphByRootWallet(r.Context(), address, opts)
	if err != nil {
		h.respondError(w, err, "Could not retrieve wallet graph", GetWalletGraph, requestId)
		return
	}

	resp := map[string]core.GraphView{
		"graph": view,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleGetNode(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	nodeID, err := uintPath(r, "nodeId")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve node",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid node id parameter",
			"error", err,
			"handler", GetNode,
			"request_id", requestId)
		return
	}

	detail, err := h.tracer.GetNodeDetail(r.Context(), nodeID)
	if err != nil {
		h.respondError(w, err, "Could not retrieve node", GetNode, requestId)
		return
	}

	resp := map[string]core.NodeDetail{
		"node": detail,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleGetNodeConnections(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	nodeID, err := uintPath(r, "nodeId")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve connections",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid node id parameter",
			"error", err,
			"handler", GetNodeConnections,
			"request_id", requestId)
		return
	}

	values := r.URL.Query()
	opts := core.ConnectionOptions{Direction: values.Get("direction")}
	if opts.Direction == "" {
		opts.Direction = "both"
	}
	if opts.Page, err = intQuery(values, "page", 1); err == nil {
		opts.Limit, err = intQuery(values, "limit", defaultListLimit)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve connections",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query parameters", "error", err, "handler", GetNodeConnections, "request_id", requestId)
		return
	}

	connections, err := h.tracer.GetNodeConnections(r.Context(), nodeID, opts)
	if err != nil {
		h.respondError(w, err, "Could not retrieve connections", GetNodeConnections, requestId)
		return
	}

	h.respond(w, connections, http.StatusOK, requestId)
}

func (h *TraceHandler) respondError(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidPagination),
		errors.Is(err, core.ErrInvalidDirection),
		errors.Is(err, core.ErrInvalidTagType):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, core.ErrWalletNotFound),
		errors.Is(err, core.ErrGraphNotFound),
		errors.Is(err, core.ErrNodeNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *TraceHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
