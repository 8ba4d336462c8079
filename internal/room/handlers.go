package room

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"codenames/internal/game"
	"codenames/logger"
)

func (reg *Registry) CreateRoomHandler(c *fiber.Ctx) error {
	r, err := reg.CreateRoom()
	if err != nil {
		logger.Error("create room: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not create room",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gameCode": r.Code,
	})
}

// RoomInfoHandler reports roster size and phase. It never includes card
// data, whatever the caller's role might be.
func (reg *Registry) RoomInfoHandler(c *fiber.Ctx) error {
	r, ok := reg.Get(strings.ToUpper(c.Params("code")))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "room not found",
		})
	}
	phase, team, total := r.Snapshot()
	return c.JSON(fiber.Map{
		"gameCode":     r.Code,
		"gameState":    phase,
		"currentTeam":  team,
		"totalPlayers": total,
	})
}

// ServeWS joins the connection to its room and runs the pumps. The join
// error surface is a close frame, the only thing a rejected socket gets.
func (reg *Registry) ServeWS(c *websocket.Conn) {
	code := strings.ToUpper(c.Params("code"))
	name := c.Query("name")
	if name == "" {
		name = "anonymous"
	}
	role := game.ParseRole(c.Query("role"))

	r, ok := reg.Get(code)
	if !ok {
		c.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "room not found"))
		c.Close()
		return
	}

	p := NewPlayer(uuid.NewString(), name, role, NewWSConn(c))
	select {
	case r.Register <- p:
	case <-r.done:
		// room shut down between lookup and registration
		c.Close()
		return
	}

	go p.ReadPump(r)
	p.WritePump()
}
