package api

import (
	"fmt"
	"net/http"

	"github.com/banachtech/binomial/bench"
	"github.com/banachtech/binomial/crr"
	"github.com/banachtech/binomial/payoff"
	"github.com/gin-gonic/gin"
)

type pricerRequest struct {
	Spot     float64 `json:"spot" binding:"required,gt=0"`
	Strike   float64 `json:"strike" binding:"required,gt=0"`
	Maturity float64 `json:"maturity" binding:"required,gt=0"`
	Rate     float64 `json:"rate"`
	Steps    int     `json:"steps" binding:"required,min=1"`
	Up       float64 `json:"up" binding:"required,gt=1"`
	Kind     string  `json:"kind"`
	Method   string  `json:"method"`
}

type benchRequest struct {
	pricerRequest
	Sweep []int `json:"sweep" binding:"required,min=1"`
}

func (server *Server) pricer(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	o, err := option(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	f, err := method(req.Method)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": f(o)})
}

func (server *Server) bench(c *gin.Context) {
	var req benchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	o, err := option(req.pricerRequest)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows := bench.Sweep(o, req.Sweep)
	results := make([]gin.H, len(rows))
	for i, row := range rows {
		results[i] = gin.H{
			"steps":        row.N,
			"scalar_price": row.Scalar.Price,
			"scalar_ns":    row.Scalar.Elapsed.Nanoseconds(),
			"bulk_price":   row.Bulk.Price,
			"bulk_ns":      row.Bulk.Elapsed.Nanoseconds(),
			"speedup":      row.Speedup(),
		}
	}

	c.JSON(http.StatusOK, gin.H{"contract": req.pricerRequest, "results": results})
}

func option(req pricerRequest) (crr.Option, error) {
	kind := payoff.Call
	if req.Kind != "" {
		var err error
		kind, err = payoff.ParseKind(req.Kind)
		if err != nil {
			return crr.Option{}, err
		}
	}
	return crr.New(req.Spot, req.Strike, req.Maturity, req.Rate, req.Steps, req.Up, kind)
}

func method(name string) (bench.Pricer, error) {
	switch name {
	case "", "bulk":
		return crr.PriceBulk, nil
	case "scalar":
		return crr.PriceScalar, nil
	}
	return nil, fmt.Errorf("unknown pricing method: %s", name)
}
