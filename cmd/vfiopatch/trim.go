package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vfiopatch/pkg/vbios"
)

func trimCmd() *cli.Command {
	var (
		inputPath     string
		outputPath    string
		ignoreSanity  bool
		disableFooter bool
		skipWarning   bool
	)

	return &cli.Command{
		Name:  "trim",
		Usage: "Trim a full vBIOS ROM down to the passthrough-compatible region",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "the full ROM to read",
				Destination: &inputPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path for saving the newly generated ROM",
				Destination: &outputPath,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "ignore-sanity-check",
				Usage:       "don't halt if any of the sanity checks fails",
				Destination: &ignoreSanity,
			},
			&cli.BoolFlag{
				Name:        "disable-footer-strip",
				Usage:       "don't strip the footer from the vBIOS (allows converting older gen GPUs)",
				Destination: &disableFooter,
			},
			&cli.BoolFlag{
				Name:        "skip-the-very-important-warning",
				Usage:       "skip the very important warning and save the ROM without asking for any input",
				Destination: &skipWarning,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := loadConfig()
			applyTrimConfig(cmd, cfg, &skipWarning, &ignoreSanity, &disableFooter)
			log := cliLogger(cfg)

			log.Info("opening the ROM file", "path", inputPath)
			img, err := vbios.OpenImage(inputPath)
			if err != nil {
				return fmt.Errorf("open ROM: %w", err)
			}
			defer func() { _ = img.Close() }()

			log.Info("scanning for ROM offsets")
			rom := vbios.Load(img.Data)
			if err := rom.DetectOffsets(disableFooter); err != nil {
				return err
			}
			offsets := rom.Offsets()
			log.Info("header found", "offset", *offsets.Header/2)
			if offsets.Footer != nil {
				log.Info("footer found", "offset", *offsets.Footer/2, "series", rom.Series())
			}

			if !disableFooter {
				log.Info("running sanity checks")
				if err := rom.CheckSanity(); err != nil {
					if !ignoreSanity {
						return err
					}
					log.Warn("ignoring sanity check failure", "error", err)
				} else {
					log.Info("no problems found")
				}
			}

			out, err := rom.Splice()
			if err != nil {
				return err
			}

			if !skipWarning {
				if err := confirmSave(os.Stdout); err != nil {
					return err
				}
			}

			log.Info("writing the edited ROM", "path", outputPath, "size", len(out))
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("write ROM: %w", err)
			}
			log.Info("done")
			return nil
		},
	}
}

const confirmText = "I agree to be careful"

const warningText = `
USE THIS SOFTWARE AT YOUR OWN DISCRETION. THIS SOFTWARE HAS *NOT* BEEN
EXTENSIVELY TESTED AND MAY NOT WORK WITH YOUR GRAPHICS CARD.

If you want to save the created vBIOS file, type the following phrase
EXACTLY as it is written below:

` + confirmText + `
`

var errWrongAnswer = errors.New("wrong answer, not saving the ROM")

// confirmSave shows the warning and requires the exact confirmation phrase.
// A non-interactive stdin cannot answer, so scripted runs must opt out with
// the skip flag instead.
func confirmSave(w *os.File) error {
	fmt.Fprint(w, warningText, "\n")
	if !stdinIsTTY() {
		return errors.New("confirmation needs an interactive terminal; use --skip-the-very-important-warning in scripts")
	}
	fmt.Fprint(w, "Type here: ")
	answer, err := readLine(os.Stdin)
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if answer != confirmText {
		return errWrongAnswer
	}
	return nil
}
