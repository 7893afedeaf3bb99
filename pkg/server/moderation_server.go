package server

import (
	"fmt"

	"github.com/NeuralTrust/TrustModeration/pkg/config"
	"github.com/NeuralTrust/TrustModeration/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ModerationServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ModerationServer struct {
		*BaseServer
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	return &ModerationServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *ModerationServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting moderation server")
	return s.Router.Listen(addr)
}
