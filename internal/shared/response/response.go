package response

import (
	"github.com/gin-gonic/gin"
)

// SubsetMeta reports how many rows survived the active filters. The
// presentation layer uses it to decide whether to render filter deltas.
type SubsetMeta struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

func NewSubsetMeta(total, filtered int) *SubsetMeta {
	return &SubsetMeta{Total: total, Filtered: filtered}
}

type ApiEnvelope struct {
	Ok    bool        `json:"ok"`
	Data  any         `json:"data,omitempty"`
	Meta  *SubsetMeta `json:"meta,omitempty"`
	Error any         `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *SubsetMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   false,
		Data: nil,
		Meta: nil,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
