// internal/handlers/group_handler.go
package handlers

import (
	"net/http"

	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/service"
	"wordvault/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GroupHandler struct {
	groups service.GroupService
}

func NewGroupHandler(groups service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateGroupRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	group, err := h.groups.Create(r.Context(), userID, req.Title, req.Password)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.JoinGroupRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	group, err := h.groups.Join(r.Context(), userID, req.Title, req.Password)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) MyGroups(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groups, err := h.groups.MyGroups(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if groups == nil {
		groups = []*model.GroupSummaryResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Details(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := parseGroupID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.groups.Details(r.Context(), userID, groupID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := parseGroupID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.groups.Leave(r.Context(), userID, groupID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) Kick(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := parseGroupID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	target := chi.URLParam(r, "user_id")
	if target == "" {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST", "A target user id is required.", "user_id", model.ErrInvalidInput))
		return
	}

	if err := h.groups.Kick(r.Context(), userID, groupID, target); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseGroupID(r *http.Request) (uuid.UUID, error) {
	groupID, err := uuid.Parse(chi.URLParam(r, "group_id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_REQUEST", "The group id is not a valid UUID.", "group_id", model.ErrInvalidInput)
	}
	return groupID, nil
}
