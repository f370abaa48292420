// Package api exposes the ROM pipeline over HTTP: clients POST a raw image
// and receive either a detection report or the trimmed ROM bytes. The server
// is stateless; every request is one independent pipeline run.
package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vfiopatch/internal/logger"
	"github.com/samcharles93/vfiopatch/internal/report"
	"github.com/samcharles93/vfiopatch/pkg/vbios"
)

// DefaultMaxImageSize bounds uploaded images. Real vBIOS dumps are at most a
// few megabytes; anything larger is not a ROM.
const DefaultMaxImageSize = 64 << 20

type Server struct {
	log          logger.Logger
	maxImageSize int64
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		log:          log,
		maxImageSize: DefaultMaxImageSize,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/healthz", s.handleHealthz)
	e.POST("/v1/rom/inspect", s.handleInspect)
	e.POST("/v1/rom/trim", s.handleTrim)
}

func (s *Server) handleHealthz(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleInspect runs detection and the sanity check and returns the report.
// A sanity violation is part of the report, not an error; only a failed
// detection makes the request fail.
func (s *Server) handleInspect(c *echo.Context) error {
	log := s.requestLogger(c)

	image, err := readImage(c, s.maxImageSize)
	if err != nil {
		return writeReadError(c, err)
	}
	disableFooter := boolParam(c, "disable_footer")

	rom := vbios.Load(image)
	if err := rom.DetectOffsets(disableFooter); err != nil {
		log.Warn("detection failed", "error", err)
		return writeDetectionError(c, err)
	}

	var sanityErr error
	if !disableFooter {
		sanityErr = rom.CheckSanity()
	}
	spliced, err := rom.Splice()
	if err != nil {
		log.Error("splice failed", "error", err)
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}

	log.Info("inspected ROM", "image_size", len(image), "series", rom.Series())
	rep := report.FromROM(rom, len(image), sanityErr, len(spliced))
	data, err := rep.JSON()
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// handleTrim runs the full pipeline and returns the trimmed ROM bytes. Query
// params mirror the CLI flags: disable_footer skips footer detection and
// stripping, ignore_sanity downgrades sanity violations to a warning.
func (s *Server) handleTrim(c *echo.Context) error {
	log := s.requestLogger(c)

	image, err := readImage(c, s.maxImageSize)
	if err != nil {
		return writeReadError(c, err)
	}
	disableFooter := boolParam(c, "disable_footer")
	ignoreSanity := boolParam(c, "ignore_sanity")

	rom := vbios.Load(image)
	if err := rom.DetectOffsets(disableFooter); err != nil {
		log.Warn("detection failed", "error", err)
		return writeDetectionError(c, err)
	}
	if !disableFooter {
		if err := rom.CheckSanity(); err != nil {
			if !ignoreSanity {
				log.Warn("sanity check failed", "error", err)
				return writeError(c, http.StatusUnprocessableEntity, "sanity_error", err.Error())
			}
			log.Warn("ignoring sanity violation", "error", err)
		}
	}

	out, err := rom.Splice()
	if err != nil {
		log.Error("splice failed", "error", err)
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}

	log.Info("trimmed ROM", "image_size", len(image), "output_size", len(out), "series", rom.Series())
	if rom.Series() != "" {
		c.Response().Header().Set("X-Rom-Series", rom.Series())
	}
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, out)
}

// requestLogger tags the server logger with a fresh request id and mirrors
// the id back to the client.
func (s *Server) requestLogger(c *echo.Context) logger.Logger {
	id := uuid.NewString()
	c.Response().Header().Set("X-Request-Id", id)
	return s.log.With("request_id", id)
}

func writeDetectionError(c *echo.Context, err error) error {
	switch {
	case errors.Is(err, vbios.ErrHeaderNotFound):
		return writeError(c, http.StatusUnprocessableEntity, "header_not_found", err.Error())
	case errors.Is(err, vbios.ErrFooterNotFound):
		return writeError(c, http.StatusUnprocessableEntity, "footer_not_found", err.Error())
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
}
