package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/ansi16"
	"github.com/bodgit/ansi16/nibble"
	"github.com/bodgit/ansi16/term"
	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(c.App.Writer)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// newConverter returns a Converter configured from the global and command
// flags, and a function to release any resources it holds
func newConverter(c *cli.Context, logger logrus.FieldLogger, options ...ansi16.Option) (*ansi16.Converter, func(), error) {
	interpolator, err := ansi16.Interpolator(c.String("filter"))
	if err != nil {
		return nil, nil, err
	}
	options = append(options, ansi16.WithScaler(ansi16.DrawScaler{Interpolator: interpolator}))

	closer := func() {}
	if file := c.String("cache"); file != "" {
		cache, err := ansi16.NewCache(file)
		if err != nil {
			return nil, nil, err
		}
		options = append(options, ansi16.WithCache(cache))
		closer = func() {
			closeLogged(cache, logger)
		}
	}

	return ansi16.New(logger, options...), closer, nil
}

func closeLogged(c io.Closer, logger logrus.FieldLogger) {
	if err := c.Close(); err != nil {
		logger.WithError(err).Error("Unable to close cache")
	}
}

func dimensions(c *cli.Context, i int) (int, int, error) {
	width, err := strconv.Atoi(c.Args().Get(i))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err := strconv.Atoi(c.Args().Get(i + 1))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	return width, height, nil
}

func decodeFile(c *cli.Context) (*image.Paletted, error) {
	width, height, err := dimensions(c, 1)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return nibble.Decode(f, width, height)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Name = "ansi16"
	app.Usage = "Convert images to packed 4-bit ANSI palette data"
	app.Version = "1.0.0"

	filterFlag := &cli.StringFlag{
		Name:  "filter",
		Value: "catmullrom",
		Usage: "resize filter: nearest, approxbilinear, bilinear or catmullrom",
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"ANSI16_CACHE"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image",
			ArgsUsage: "INPUT WIDTH HEIGHT OUTPUT",
			Flags:     []cli.Flag{filterFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 4 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				width, height, err := dimensions(c, 1)
				if err != nil {
					return cli.Exit(err, 1)
				}

				m, closer, err := newConverter(c, newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer closer()

				if err := m.Convert(c.Args().First(), width, height, c.Args().Get(3)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory tree",
			Description: "Each image is written alongside the original with " + ansi16.OutputExt + " appended to its name.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				filterFlag,
				&cli.IntFlag{
					Name:     "width",
					Usage:    "output width",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "height",
					Usage:    "output height",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of concurrent conversions (default: number of CPUs)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)

				bar := pb.ProgressBarTemplate(`{{counters . }} {{string . "file"}}`).New(0).SetWriter(c.App.ErrWriter)

				m, closer, err := newConverter(c, logger, ansi16.WithWorkers(c.Int("workers")), ansi16.WithProgress(func(file string) {
					bar.Set("file", filepath.Base(file))
					bar.Increment()
				}))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer closer()

				bar.Start()

				err = m.ConvertDir(context.Background(), c.Args().First(), c.Int("width"), c.Int("height"))
				bar.Finish()
				if err != nil {
					return cli.Exit(err, 1)
				}

				logger.Infof("Converted %d images", bar.Current())

				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Display a converted image on the terminal",
			ArgsUsage: "FILE WIDTH HEIGHT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := decodeFile(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := term.Render(c.App.Writer, m); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "png",
			Usage:     "Decode a converted image to PNG",
			ArgsUsage: "FILE WIDTH HEIGHT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 4 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := decodeFile(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := os.Create(c.Args().Get(3))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := png.Encode(f, m); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "palette",
			Usage: "Print the ANSI palette",
			Action: func(c *cli.Context) error {
				if err := term.PaletteTable(c.App.Writer); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
