// Package mockapi serves an in-memory bike rental service for local
// development and tests.
package mockapi

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/bike"
)

// DefaultServiceFee is the share of the rent amount charged as a fee.
const DefaultServiceFee = 0.15

// Options configures a Server.
type Options struct {
	// Token, when set, must match the Authorization header.
	Token      string
	// ServiceFee is the fee share of the rent; nil uses DefaultServiceFee.
	ServiceFee *float64
	Catalog    []bike.Bike
	Logger     logrus.FieldLogger
}

// Server holds the catalog and the rentals made against it.
type Server struct {
	token string
	fee   float64
	log   logrus.FieldLogger

	mu      sync.Mutex
	bikes   map[int]bike.Bike
	rentals []bike.BikeReturnDetails
	nextID  int
}

// New builds a server. A nil Catalog uses DefaultCatalog.
func New(opts Options) *Server {
	fee := DefaultServiceFee
	if opts.ServiceFee != nil {
		fee = *opts.ServiceFee
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	s := &Server{
		token:  opts.Token,
		fee:    fee,
		log:    opts.Logger,
		bikes:  make(map[int]bike.Bike, len(opts.Catalog)),
		nextID: 1,
	}
	for _, b := range opts.Catalog {
		s.bikes[b.ID] = b
	}
	return s
}

// Handler returns the gin router serving the rental routes.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(s.log))
	router.Use(s.authorize)
	router.GET("/bikes", s.listBikes)
	router.GET("/bikes/:id", s.getBike)
	router.POST("/bikes/amount", s.amount)
	router.POST("/bikes/rent", s.rent)

	return router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		s.log.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("failed to shutdown http server: %v", err)
		return err
	}
	return nil
}

// Rentals returns the rentals made so far.
func (s *Server) Rentals() []bike.BikeReturnDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bike.BikeReturnDetails(nil), s.rentals...)
}

// Quote computes the price breakdown for details.
func (s *Server) Quote(rate float64, details bike.RentDetails) bike.RentAmount {
	amount := round(rate * float64(details.Days()))
	fee := round(amount * s.fee)
	return bike.RentAmount{
		RentAmount:  amount,
		Fee:         fee,
		TotalAmount: round(amount + fee),
	}
}

func (s *Server) authorize(c *gin.Context) {
	if s.token != "" && c.GetHeader("Authorization") != s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	c.Next()
}

func (s *Server) listBikes(c *gin.Context) {
	s.mu.Lock()
	list := make([]bike.Bike, 0, len(s.bikes))
	for _, b := range s.bikes {
		list = append(list, b)
	}
	s.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	c.JSON(http.StatusOK, list)
}

func (s *Server) getBike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	b, ok := s.bikes[id]
	s.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "bike not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) bind(c *gin.Context) (bike.RentDetails, bike.Bike, bool) {
	var details bike.RentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return details, bike.Bike{}, false
	}
	if err := details.Validate(); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return details, bike.Bike{}, false
	}
	s.mu.Lock()
	b, ok := s.bikes[details.BikeID]
	s.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "bike not found"})
		return details, bike.Bike{}, false
	}
	return details, b, true
}

func (s *Server) amount(c *gin.Context) {
	details, b, ok := s.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Quote(b.Rate, details))
}

func (s *Server) rent(c *gin.Context) {
	details, _, ok := s.bind(c)
	if !ok {
		return
	}

	s.mu.Lock()
	b := s.bikes[details.BikeID]
	if b.IsRented {
		s.mu.Unlock()
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"message": "bike already rented"})
		return
	}
	b.IsRented = true
	s.bikes[b.ID] = b
	ret := bike.BikeReturnDetails{
		ID:       s.nextID,
		BikeID:   b.ID,
		UserID:   details.UserID,
		DateFrom: details.DateFrom,
		DateTo:   details.DateTo,
		Bike:     b,
	}
	s.nextID++
	s.rentals = append(s.rentals, ret)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"bike": b.ID,
		"user": details.UserID,
		"from": details.DateFrom.String(),
		"to":   details.DateTo.String(),
	}).Info("bike rented")
	c.JSON(http.StatusOK, ret)
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
