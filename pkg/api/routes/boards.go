package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/railboard/pkg/dataaggregator"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/dataaggregator/source"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/travigo/railboard/pkg/servicefilter"
	"github.com/travigo/railboard/pkg/stationboard"
)

func BoardsRouter(router fiber.Router) {
	router.Get("/departures/:crs/:rows?", boardHandler(ldb.DirectionDepartures, false))
	router.Get("/arrivals/:crs/:rows?", boardHandler(ldb.DirectionArrivals, false))
	router.Get("/services/:crs/:rows?", boardHandler(ldb.DirectionDepartures, true))
}

// boardHandler serves a rendered board. The services variant always expands
// calling points and returns the detailed field group.
func boardHandler(direction ldb.Direction, services bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crs := c.Params("crs")

		rows := query.DefaultRows
		if rowsParam := c.Params("rows"); rowsParam != "" {
			parsed, err := strconv.Atoi(rowsParam)
			if err != nil || parsed < 0 {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Rows must be a positive number",
				})
			}
			rows = parsed
		}

		offset, err := query.ParseDuration(c.Query("offset"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		window, err := query.ParseDuration(c.Query("window"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		filter, err := servicefilter.Compile(c.Query("filter"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		showCallingPoints := services || c.QueryBool("callingpoints") || c.QueryBool("expand")
		detailed := services || c.QueryBool("detailed")

		board, err := dataaggregator.Lookup(c.UserContext(), query.Board{
			Crs:        crs,
			Direction:  direction,
			Rows:       rows,
			Expand:     showCallingPoints,
			TimeOffset: offset,
			TimeWindow: window,
		})
		if err != nil {
			c.SendStatus(lookupErrorStatus(err))
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		result := stationboard.Render(filter.Apply(board), crs, stationboard.Config{
			Direction:         direction,
			ShowMessages:      c.QueryBool("messages", true),
			ShowFormation:     c.QueryBool("formation"),
			ShowCallingPoints: showCallingPoints,
		})

		groups := []string{"basic"}
		if detailed {
			groups = append(groups, "detailed")
		}

		resultReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, result)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce Board",
			})
		}

		return c.JSON(resultReduced)
	}
}

func lookupErrorStatus(err error) int {
	switch {
	case errors.Is(err, query.ErrInvalidQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, source.UnsupportedSourceError):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
