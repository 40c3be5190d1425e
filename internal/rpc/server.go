package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/jsisencao/portal-juridico/internal/portal"
)

func New(logger *slog.Logger, portalService *portal.Service) *zenrpc.Server {
	rpcService := NewPortalService(portalService)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("portal", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "portal-juridico", nil))

	return rpcServer
}
