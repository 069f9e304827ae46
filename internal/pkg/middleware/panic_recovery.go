package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the
// stack trace and returns a 500 to the client.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					recovered, ok := r.(error)
					if !ok {
						recovered = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("client_ip", c.RealIP()),
						logger.Err(recovered),
						logger.String("stack", string(debug.Stack())))

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
