package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workflow-automation-agent/internal/workflow"
	"workflow-automation-agent/pkg/response"
)

// Process godoc
// @Summary     Process an automation request
// @Description Turns a natural language request into an imported workflow, or a manual-selection fallback when no template is a confident match.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Automation request"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := uuid.NewString()
	c.Header("X-Request-ID", requestID)

	req, err := h.processProcessReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	h.l.Infof(ctx, "agent.Process: request_id=%s message_length=%d", requestID, len(req.Message))

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, workflow.ErrEmptyQuery) {
			response.BadRequest(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Process: request_id=%s %v", requestID, err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newProcessResp(requestID, output))
}

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
