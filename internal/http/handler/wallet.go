package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"graphtrace/internal/core"
	"graphtrace/internal/http/payload"
)

func (h *TraceHandler) HandleApplyTag(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.TagRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not apply tag",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ApplyTag,
			"request_id", requestId)
		return
	}

	record, err := h.tracer.ApplyTag(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, err, "Could not apply tag", ApplyTag, requestId)
		return
	}

	resp := map[string]core.TagRecord{
		"tag": record,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *TraceHandler) HandleGetWalletProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	profile, err := h.tracer.GetWalletProfile(r.Context(), r.PathValue("address"))
	if err != nil {
		h.respondError(w, err, "Could not retrieve wallet", GetWalletProfile, requestId)
		return
	}

	resp := map[string]core.WalletProfile{
		"wallet": profile,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleSearchWallets(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not search wallets",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", SearchWallets, "request_id", requestId)
		return
	}

	opts := core.SearchOptions{
		Term:    values.Get("term"),
		Chain:   values.Get("chain"),
		TagType: values.Get("tagType"),
	}
	if opts.Term == "" {
		h.respond(w, Response{
			Message: "Could not search wallets",
			Error:   "term parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing term parameter", "handler", SearchWallets, "request_id", requestId)
		return
	}
	if opts.Limit, err = intQuery(values, "limit", defaultListLimit); err == nil {
		opts.Offset, err = intQuery(values, "offset", 0)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not search wallets",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query parameters", "error", err, "handler", SearchWallets, "request_id", requestId)
		return
	}

	results, err := h.tracer.SearchWallets(r.Context(), opts)
	if err != nil {
		h.respondError(w, err, "Could not search wallets", SearchWallets, requestId)
		return
	}

	resp := map[string][]core.WalletSearchResult{
		"results": results,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleListTags(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list tags",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", ListTags, "request_id", requestId)
		return
	}

	opts := core.ListTagsOptions{
		TagType:       values.Get("tagType"),
		AddedBy:       values.Get("addedBy"),
		WalletAddress: values.Get("walletAddress"),
	}
	if opts.Limit, err = intQuery(values, "limit", defaultListLimit); err == nil {
		opts.Offset, err = intQuery(values, "offset", 0)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list tags",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid query parameters", "error", err, "handler", ListTags, "request_id", requestId)
		return
	}

	tags, err := h.tracer.ListTags(r.Context(), opts)
	if err != nil {
		h.respondError(w, err, "Could not list tags", ListTags, requestId)
		return
	}

	h.respond(w, tags, http.StatusOK, requestId)
}

func (h *TraceHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	overview, err := h.tracer.GetStats(r.Context())
	if err != nil {
		h.respondError(w, err, "Could not retrieve statistics", GetStats, requestId)
		return
	}

	resp := map[string]core.StatsOverview{
		"stats": overview,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}
