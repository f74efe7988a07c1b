package display

import (
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/dataaggregator/global"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Show live departure or arrival boards in the terminal",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "station",
				Aliases: []string{"s"},
				Value:   cli.NewStringSlice("kgx"),
				Usage:   "CRS code of the station, repeat for several boards",
			},
			&cli.IntFlag{
				Name:    "rows",
				Aliases: []string{"r"},
				Value:   query.DefaultRows,
				Usage:   "number of services to request",
			},
			&cli.BoolFlag{
				Name:    "messages",
				Aliases: []string{"m"},
				Usage:   "show NRCC messages below the board",
			},
			&cli.BoolFlag{
				Name:    "formation",
				Aliases: []string{"f"},
				Usage:   "show the coach formation of each train",
			},
			&cli.BoolFlag{
				Name:    "calling-points",
				Aliases: []string{"c"},
				Usage:   "request and show calling points",
			},
			&cli.BoolFlag{
				Name:    "local",
				Aliases: []string{"l"},
				Usage:   "read boards from local fixture files instead of the API",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "log requests and dump the decoded boards",
			},
			&cli.BoolFlag{
				Name:    "arrivals",
				Aliases: []string{"a"},
				Usage:   "show arrivals instead of departures",
			},
			&cli.StringFlag{
				Name:  "offset",
				Usage: "time offset from now, in minutes or as an ISO 8601 duration",
			},
			&cli.StringFlag{
				Name:  "window",
				Usage: "time window to show, in minutes or as an ISO 8601 duration",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "expression selecting the services to show, e.g. 'operatorCode == \"GR\"'",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: string(FormatTable),
				Usage: "output format: table, csv or json",
			},
			&cli.BoolFlag{
				Name:  "detailed",
				Usage: "include detailed fields in JSON output",
			},
			&cli.BoolFlag{
				Name:  "no-colour",
				Usage: "disable colours in table output",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := ParseFormat(c.String("format"))
			if err != nil {
				return cli.Exit(err, 2)
			}

			if c.Bool("debug") {
				log.Logger = log.Logger.Level(zerolog.DebugLevel)
			}

			direction := ldb.DirectionDepartures
			if c.Bool("arrivals") {
				direction = ldb.DirectionArrivals
			}

			var stations []string
			for _, station := range c.StringSlice("station") {
				for _, crs := range strings.Split(station, ",") {
					if crs = strings.TrimSpace(crs); crs != "" {
						stations = append(stations, crs)
					}
				}
			}

			global.Setup(c.Bool("local"))

			err = Run(c.Context, colorable.NewColorableStdout(), Options{
				Stations:          stations,
				Direction:         direction,
				Rows:              c.Int("rows"),
				TimeOffset:        c.String("offset"),
				TimeWindow:        c.String("window"),
				ShowMessages:      c.Bool("messages"),
				ShowFormation:     c.Bool("formation"),
				ShowCallingPoints: c.Bool("calling-points"),
				Filter:            c.String("filter"),
				Format:            format,
				Colour:            !c.Bool("no-colour") && isatty.IsTerminal(os.Stdout.Fd()),
				Detailed:          c.Bool("detailed"),
				Debug:             c.Bool("debug"),
			})
			if err != nil {
				return cli.Exit(err, 1)
			}

			return nil
		},
	}
}
