package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/electro/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) root(c *gin.Context) {
	c.String(http.StatusOK, "electro server is running")
}

func (s *HTTPServer) ping(c *gin.Context) {
	if err := s.svc.Store.Ping(c.Request.Context()); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) locate(c *gin.Context) {
	product, err := s.svc.Locator.Locate(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *HTTPServer) locateWithRelated(c *gin.Context) {
	detail, err := s.svc.Locator.LocateWithRelated(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *HTTPServer) locateRecentlyAdded(c *gin.Context) {
	product, err := s.svc.Locator.LocateIn(c.Request.Context(), s.recentlyAdded, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *HTTPServer) resolve(c *gin.Context) {
	f, err := services.ParseProductFilter(c.Request.URL.Query())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	res, err := s.svc.Resolver.Resolve(c.Request.Context(), f)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *HTTPServer) listPartition(partition string) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.svc.Catalog.List(c.Request.Context(), partition)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
