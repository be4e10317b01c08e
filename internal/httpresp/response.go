// Package httpresp holds the success envelopes every handler returns.
// Single objects go out bare; collections carry their length so list
// pages render a count without a second query.
package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// List wraps a slice in the counted envelope. Callers hand in non-nil
// slices (the use cases pre-allocate), so data never serializes null.
func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
