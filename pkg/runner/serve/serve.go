// Package serve runs the in-memory rental service.
package serve

import (
	"context"

	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/mockapi"
)

type Serve struct {
	Addr       string
	Token      string
	ServiceFee float64
}

func (s *Serve) Do(ctx context.Context) error {
	srv := mockapi.New(mockapi.Options{
		Token:      s.Token,
		ServiceFee: &s.ServiceFee,
		Logger:     logrus.StandardLogger(),
	})
	logrus.WithFields(logrus.Fields{
		"addr":       s.Addr,
		"serviceFee": s.ServiceFee,
		"auth":       s.Token != "",
	}).Info("starting rental service")
	return srv.Run(ctx, s.Addr)
}
