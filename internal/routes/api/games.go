package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/session"
)

// errorStatus maps session errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrIllegalMove),
		errors.Is(err, session.ErrGameOver),
		errors.Is(err, session.ErrNotYourTurn):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// CreateGame starts a new game.
func CreateGame(c *fiber.Ctx) error {
	var req models.NewGameRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	mode, err := req.Validate()
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	s, err := services.FromCtx(c).Sessions.Create(mode)
	if err != nil {
		return sendError(c, errorStatus(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewGameResponse(s))
}

// ListGames returns all games.
func ListGames(c *fiber.Ctx) error {
	sessions := services.FromCtx(c).Sessions.List()

	games := make([]models.GameResponse, len(sessions))
	for i, s := range sessions {
		games[i] = models.NewGameResponse(s)
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetGame returns a single game.
func GetGame(c *fiber.Ctx) error {
	s, err := services.FromCtx(c).Sessions.Get(c.Params("id"))
	if err != nil {
		return sendError(c, errorStatus(err), err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(s))
}

// PlayMove plays a move for the player to move.
func PlayMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	move, err := req.Validate()
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, err.Error())
	}

	s, err := services.FromCtx(c).Sessions.Move(c.Params("id"), move)
	if err != nil {
		return sendError(c, errorStatus(err), err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(s))
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	if err := services.FromCtx(c).Sessions.Delete(c.Params("id")); err != nil {
		return sendError(c, errorStatus(err), err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
