package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// ElectionController handles community polls, ballots and voting.
type ElectionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewElectionController(ctx *gin.Context, container *container.ServiceContainer) *ElectionController {
	return &ElectionController{Ctx: ctx, Container: container}
}

// HandleElectionFunc returns a gin handler dispatching to the election
// controller.
func HandleElectionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewElectionController(ctx, container)

		switch method {
		case "getElections":
			controller.GetElections()
		case "getElection":
			controller.GetElection()
		case "createElection":
			controller.CreateElection()
		case "updateElection":
			controller.UpdateElection()
		case "deleteElection":
			controller.DeleteElection()
		case "addCandidate":
			controller.AddCandidate()
		case "removeCandidate":
			controller.RemoveCandidate()
		case "vote":
			controller.Vote()
		case "getResults":
			controller.GetResults()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetElections
// @Summary List elections
// @Description Community scoped.
// @Tags Election
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /elections [get]
func (c *ElectionController) GetElections() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	elections, total, err := electionService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, elections, total, page)
}

// GetElection
// @Summary Get an election with its ballot
// @Tags Election
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /elections/{id} [get]
func (c *ElectionController) GetElection() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	election, err := electionService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, election)
}

// CreateElection
// @Summary Open an election
// @Description Admin or root.
// @Tags Election
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.ElectionInput true "Election"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /elections [post]
func (c *ElectionController) CreateElection() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ElectionInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	election, err := electionService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, election)
}

// UpdateElection
// @Summary Replace an election
// @Description Admin or root.
// @Tags Election
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Param body body services.ElectionInput true "Election"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /elections/{id} [put]
func (c *ElectionController) UpdateElection() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ElectionInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	election, err := electionService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, election)
}

// DeleteElection
// @Summary Delete an election
// @Description Admin or root. Removes the election with its candidates and votes.
// @Tags Election
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /elections/{id} [delete]
func (c *ElectionController) DeleteElection() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	if err := electionService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}

// AddCandidate
// @Summary Add a candidate to the ballot
// @Description Admin or root.
// @Tags Election
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Param body body services.CandidateInput true "Candidate"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /elections/{id}/candidates [post]
func (c *ElectionController) AddCandidate() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.CandidateInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	candidate, err := electionService.AddCandidate(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, candidate)
}

// RemoveCandidate
// @Summary Remove a candidate from the ballot
// @Description Admin or root. Ballots already cast for the candidate are removed with it.
// @Tags Election
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Param candidate_id path string true "Candidate id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /elections/{id}/candidates/{candidate_id} [delete]
func (c *ElectionController) RemoveCandidate() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	if err := electionService.RemoveCandidate(clr, c.Ctx.Param("id"), c.Ctx.Param("candidate_id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}

// Vote
// @Summary Cast or change a vote
// @Description Residents of the election's community only, inside the voting window. A second vote replaces the first.
// @Tags Election
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Param body body services.VoteInput true "Vote"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /elections/{id}/vote [post]
func (c *ElectionController) Vote() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.VoteInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	vote, err := electionService.UpsertVote(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, vote)
}

// GetResults
// @Summary Tally an election
// @Description One line per candidate with its vote count, candidates without ballots included.
// @Tags Election
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Election id"
// @Success 200 {object} response.Response
// @Failure 404 {object} ErrorResponse
// @Router /elections/{id}/results [get]
func (c *ElectionController) GetResults() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	electionService := c.Container.GetService("election").(services.InterfaceElectionService)
	results, err := electionService.Results(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, results)
}
