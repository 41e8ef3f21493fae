// The render server turns document HTML into PDFs with a headless browser.
// It keeps one shared browser process, started lazily on the first render,
// and opens a fresh tab per request.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const renderTimeout = 45 * time.Second

// htmlShell wraps document bodies in the fixed print stylesheet. Documents
// carry their own inline styles; this only sets page-level typography and
// print behavior.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { box-sizing: border-box; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  html, body { margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    font-size: 13px;
    line-height: 1.5;
    color: #111827;
    padding: 24px;
  }
  img { max-width: 100%%; }
  table { page-break-inside: avoid; }
</style>
</head>
<body>%s</body>
</html>`

type renderRequest struct {
	HTMLContent string `json:"htmlContent" binding:"required"`
	Options     struct {
		Format   string `json:"format"`
		Filename string `json:"filename"`
	} `json:"options"`
}

// paperSize returns width and height in inches for a paper format name
func paperSize(format string) (float64, float64) {
	switch format {
	case "A4":
		return 8.27, 11.69
	case "Legal":
		return 8.5, 14
	default: // Letter
		return 8.5, 11
	}
}

// browserPool owns the shared browser process
type browserPool struct {
	once      sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	allocStop context.CancelFunc
	err       error
}

// get starts the browser on first use
func (p *browserPool) get() (context.Context, error) {
	p.once.Do(func() {
		allocCtx, allocStop := chromedp.NewExecAllocator(context.Background(),
			append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("disable-dev-shm-usage", true),
				chromedp.Flag("no-sandbox", true),
			)...,
		)
		ctx, cancel := chromedp.NewContext(allocCtx)

		// force the browser process to start now so failures surface here
		if err := chromedp.Run(ctx); err != nil {
			cancel()
			allocStop()
			p.err = fmt.Errorf("failed to start browser: %w", err)
			return
		}

		p.ctx = ctx
		p.cancel = cancel
		p.allocStop = allocStop
		log.Println("Headless browser started")
	})
	return p.ctx, p.err
}

// shutdown tears the browser down if it was started
func (p *browserPool) shutdown() {
	if p.cancel != nil {
		p.cancel()
	}
	if p.allocStop != nil {
		p.allocStop()
	}
}

// renderPDF opens a tab, loads the HTML, and prints it
func (p *browserPool) renderPDF(html, format string) ([]byte, error) {
	browserCtx, err := p.get()
	if err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, renderTimeout)
	defer cancelTimeout()

	width, height := paperSize(format)
	doc := fmt.Sprintf(htmlShell, html)

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	pool := &browserPool{}
	defer pool.shutdown()

	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.POST("/api/generate-pdf", func(c *gin.Context) {
		var req renderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "htmlContent is required"})
			return
		}

		pdf, err := pool.renderPDF(req.HTMLContent, req.Options.Format)
		if err != nil {
			log.Printf("Render failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
			return
		}

		filename := req.Options.Filename
		if filename == "" {
			filename = "document.pdf"
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", pdf)
	})

	port := os.Getenv("RENDER_PORT")
	if port == "" {
		port = "3001"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Printf("Render server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start render server:", err)
		}
	}()

	// shut the browser down cleanly on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down render server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
