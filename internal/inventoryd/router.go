package inventoryd

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "github.com/kiosk404/stockmind/internal/inventoryd/handler/v1"
	"github.com/kiosk404/stockmind/internal/inventoryd/store"
)

func initRouter(engine *gin.Engine, s *store.Store, log *logrus.Logger) {
	h := v1.NewInventoryHandler(s, log)

	engine.GET("/inventory", h.Get)
	engine.POST("/inventory", h.Update)
}
