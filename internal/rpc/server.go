package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// New builds the JSON-RPC server. journal may be nil.
func New(logger *slog.Logger, journal JournalStore) *zenrpc.Server {
	rpcService := NewDeskService(journal)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("desk", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "powersector-desk", nil))

	return rpcServer
}
