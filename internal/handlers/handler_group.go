package handlers

import (
	"net/http"

	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// groupHandler handles HTTP requests related to groups and their balances.
type groupHandler struct {
	groupService   portssvc.GroupSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade, bs portssvc.BalanceSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs, balanceService: bs}
}

// registerGroupRoutes registers all group-related routes.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newGroupHandler(groupService, balanceService)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:id", h.getGroup)
		groups.GET("/:id/members", h.listMembers)
		groups.POST("/:id/members", h.addMember)
		groups.DELETE("/:id/members/:userID", h.removeMember)
		groups.GET("/:id/balances", h.getBalances)
	}
}

// createGroup godoc
// @Summary Create a group
// @Description Creates a new group with the caller as its first admin
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List the caller's groups
// @Tags groups
// @Produce  json
// @Success 200 {object} dto.ListGroupsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	groups, err := h.groupService.ListGroupsForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGroupsResponse(groups))
}

// getGroup godoc
// @Summary Get a group by ID
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve group")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// listMembers godoc
// @Summary List group members
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Success 200 {array} dto.MemberResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *groupHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.groupService.ListMembers(c.Request.Context(), groupID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponses(members))
}

// addMember godoc
// @Summary Add a member to a group
// @Description Adds a user to the group; admin only
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   member body dto.AddMemberRequest true "Member to add"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group or user not found"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *groupHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.groupService.AddMember(c.Request.Context(), groupID, req, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to add member")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member from a group
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   userID path string true "User ID to remove"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /groups/{id}/members/{userID} [delete]
func (h *groupHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")
	memberUserID := c.Param("userID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.groupService.RemoveMember(c.Request.Context(), groupID, memberUserID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}

// getBalances godoc
// @Summary Get group balances
// @Description Reports each member's net balance (paid minus owed) across the group's full expense history
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Success 200 {array} dto.BalanceRecord
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/balances [get]
func (h *groupHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balances, err := h.balanceService.GetGroupBalances(c.Request.Context(), groupID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceRecords(balances))
}
