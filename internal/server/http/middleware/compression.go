package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/encomendas/internal/server/http/dto"
)

// MaxRequestBody caps the decoded size of a request body. Order forms are a few hundred bytes.
const MaxRequestBody = 1 << 20

type gzipBody struct {
	*gzip.Reader
	raw interface{ Close() error }
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.raw.Close()
}

// DecompressRequest unwraps gzip encoded request bodies and limits every body to MaxRequestBody.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if strings.Contains(strings.ToLower(c.GetHeader("Content-Encoding")), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "corpo gzip inválido"})
				return
			}
			c.Request.Body = gzipBody{Reader: reader, raw: c.Request.Body}
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
		c.Next()
	}
}
