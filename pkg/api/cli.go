package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/dataaggregator/global"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the board web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.BoolFlag{
						Name:  "local",
						Usage: "serve boards from local fixture files instead of the API",
					},
				},
				Action: func(c *cli.Context) error {
					global.Setup(c.Bool("local"))

					ldb.LoadOperatorCodes()

					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
