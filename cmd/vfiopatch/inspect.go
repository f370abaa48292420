package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vfiopatch/internal/report"
	"github.com/samcharles93/vfiopatch/pkg/vbios"
)

func inspectCmd() *cli.Command {
	var (
		inputPath     string
		disableFooter bool
		asJSON        bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Report ROM offsets, footer series and sanity findings without writing anything",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "the full ROM to read",
				Destination: &inputPath,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "disable-footer-strip",
				Usage:       "inspect in footer-optional mode",
				Destination: &disableFooter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the report as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := loadConfig()
			log := cliLogger(cfg)

			img, err := vbios.OpenImage(inputPath)
			if err != nil {
				return fmt.Errorf("open ROM: %w", err)
			}
			defer func() { _ = img.Close() }()

			rom := vbios.Load(img.Data)
			if err := rom.DetectOffsets(disableFooter); err != nil {
				return err
			}

			var sanityErr error
			if !disableFooter {
				sanityErr = rom.CheckSanity()
			}
			spliced, err := rom.Splice()
			if err != nil {
				return err
			}
			rep := report.FromROM(rom, len(img.Data), sanityErr, len(spliced))

			if asJSON {
				data, err := rep.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			printReport(rep)
			if sanityErr != nil {
				log.Warn("sanity check failed", "error", sanityErr)
			}
			return nil
		},
	}
}

func printReport(rep report.Report) {
	w := os.Stdout
	fmt.Fprintf(w, "image size:     %d bytes\n", rep.ImageSize)
	fmt.Fprintf(w, "header offset:  0x%x\n", rep.HeaderOffset)
	switch {
	case rep.FooterSkipped:
		fmt.Fprintln(w, "footer:         skipped")
	case rep.FooterOffset != nil:
		fmt.Fprintf(w, "footer offset:  0x%x\n", *rep.FooterOffset)
		fmt.Fprintf(w, "footer series:  %s\n", rep.Series)
	}
	if rep.Sanity != nil {
		if rep.Sanity.OK {
			fmt.Fprintln(w, "sanity checks:  ok")
		} else {
			fmt.Fprintf(w, "sanity checks:  FAILED (%s)\n", rep.Sanity.Message)
		}
	}
	fmt.Fprintf(w, "trimmed size:   %d bytes\n", rep.SplicedSize)
}
