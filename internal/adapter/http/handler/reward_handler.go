package handler

import (
	"ticketing-rewards/internal/adapter/http/dto"
	"ticketing-rewards/internal/adapter/http/middleware"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"
	"ticketing-rewards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RewardHandler handles reward issuance, queries and redemption endpoints.
type RewardHandler struct {
	issuanceSvc   ports.RewardIssuanceService
	redemptionSvc ports.RewardRedemptionService
	querySvc      ports.RewardQueryService
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(
	issuanceSvc ports.RewardIssuanceService,
	redemptionSvc ports.RewardRedemptionService,
	querySvc ports.RewardQueryService,
) *RewardHandler {
	return &RewardHandler{
		issuanceSvc:   issuanceSvc,
		redemptionSvc: redemptionSvc,
		querySvc:      querySvc,
	}
}

// Generate handles POST /api/v1/rewards/generate.
func (h *RewardHandler) Generate(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	reward, err := h.issuanceSvc.IssueIfEligible(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToRewardResponse(*reward))
}

// List handles GET /api/v1/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	rewards, err := h.querySvc.ListRewards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RewardListResponse{Rewards: dto.ToRewardResponses(rewards)})
}

// Count handles GET /api/v1/rewards/count.
func (h *RewardHandler) Count(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	count, err := h.querySvc.CountPending(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PendingCountResponse{Count: count})
}

// RedeemOne handles POST /api/v1/rewards/:id/redeem.
// The credit always lands in the reward owner's wallet.
func (h *RewardHandler) RedeemOne(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid reward id"))
		return
	}

	result, err := h.redemptionSvc.RedeemOne(c.Request.Context(), rewardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RedeemResponse{
		Reward: dto.ToRewardResponse(result.Reward),
		Amount: result.Amount,
	})
}

// RedeemAll handles POST /api/v1/rewards/redeem-all.
func (h *RewardHandler) RedeemAll(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.redemptionSvc.RedeemAll(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBatchRedeemResponse(result))
}

// callerID extracts the authenticated user's UUID from the gin context.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
