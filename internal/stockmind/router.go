package stockmind

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "github.com/kiosk404/stockmind/internal/stockmind/handler/v1"
)

func initRouter(engine *gin.Engine, p v1.QueryProcessor, log *logrus.Logger) {
	h := v1.NewQueryHandler(p, log)

	engine.POST("/process_query", h.Process)
}
