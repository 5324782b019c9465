package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mixedpower/app"
	"mixedpower/domain/design"
	apperrors "mixedpower/internal/errors"
)

// powerRequest is the JSON body of POST /api/power. Omitted fields
// keep the documented defaults.
type powerRequest struct {
	Design string `json:"design"`
	design.Params
}

// solveRequest is the JSON body of POST /api/solve.
type solveRequest struct {
	Variable    string  `json:"variable"`
	TargetPower float64 `json:"target_power"`
	design.Params
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePower(c *gin.Context) {
	req := powerRequest{
		Design: string(design.CCC),
		Params: design.DefaultParams(),
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidInput("malformed request body: "+err.Error()))
		return
	}

	result, err := s.service.Power(req.Design, req.Params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"design": req.Design,
		"power":  result.Power,
		"result": result,
	})
}

func (s *Server) handleSolve(c *gin.Context) {
	req := solveRequest{
		Variable:    string(design.NParticipants),
		TargetPower: app.DefaultTargetPower,
		Params:      design.DefaultParams(),
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidInput("malformed request body: "+err.Error()))
		return
	}

	outcome, err := s.service.Solve(req.Variable, req.TargetPower, req.Params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (s *Server) handleSweep(c *gin.Context) {
	req := app.SweepRequest{
		Design:   string(design.CCC),
		Variable: string(design.NParticipants),
		From:     2,
		To:       100,
		Step:     1,
		Params:   design.DefaultParams(),
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidInput("malformed request body: "+err.Error()))
		return
	}

	result, err := s.service.Sweep(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps structured application errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeDegenerateModel:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"code":       code,
		"request_id": c.GetString(RequestIDKey),
	})
}
