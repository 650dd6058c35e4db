package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

// RegisterSwagger serves docs/swagger.yaml as JSON and the Swagger UI under
// /swagger. The document is read on each request so edits show up without a
// restart.
func RegisterSwagger(e *echo.Echo, docsDir string) {
	if docsDir == "" {
		docsDir = "docs"
	}
	specPath := filepath.Join(docsDir, "swagger.yaml")

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		log := logging.WithComponent("swagger")
		data, err := os.ReadFile(specPath)
		if err != nil {
			log.Error().Err(err).Str("path", specPath).Msg("load swagger spec")
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		jsonSpec, err := yaml.YAMLToJSON(data)
		if err != nil {
			log.Error().Err(err).Str("path", specPath).Msg("convert swagger spec")
			return c.JSON(http.StatusInternalServerError, util.Error("unable to parse swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
