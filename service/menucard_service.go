package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"ds-burguer/models"
	"ds-burguer/repository"
	"ds-burguer/utils"
)

// MenuCardService renders the menu as a shareable card: an HTML page, or a
// PNG/PDF produced by driving headless Chrome over the HTML render.
type MenuCardService struct {
	menuRepo repository.MenuRepositoryInterface
	baseURL  string // Base URL for the HTML render endpoint (e.g., "http://localhost:8080")
}

// NewMenuCardService creates a new MenuCardService
func NewMenuCardService(menuRepo repository.MenuRepositoryInterface, baseURL string) *MenuCardService {
	return &MenuCardService{
		menuRepo: menuRepo,
		baseURL:  baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

type menuCardSection struct {
	Label    string
	Products []menuCardProduct
}

type menuCardProduct struct {
	Name  string
	Desc  string
	Price string
	Image string
}

// RenderHTML renders the menu card HTML page from the template.
func (s *MenuCardService) RenderHTML() (string, error) {
	templatePath := filepath.Join("templates", "menucard.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var sections []menuCardSection
	for _, cat := range models.ProductCategories() {
		products := s.menuRepo.ItemsByCategory(cat)
		if len(products) == 0 {
			continue
		}
		section := menuCardSection{Label: cat.Label()}
		for _, p := range products {
			section.Products = append(section.Products, menuCardProduct{
				Name:  p.Name,
				Desc:  p.Desc,
				Price: utils.FormatKz(p.Price),
				Image: p.Image,
			})
		}
		sections = append(sections, section)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Sections": sections}); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// newChromeContext builds a chromedp context pointed at the detected browser.
func newChromeContext(ctx context.Context) (context.Context, context.CancelFunc, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	return chromedpCtx, chromedpCancel, allocCancel
}

// renderURL is where headless Chrome loads the HTML version of the card.
func (s *MenuCardService) renderURL() string {
	return fmt.Sprintf("%s/menu/card?format=html", s.baseURL)
}

// GeneratePNG screenshots the rendered menu card.
func (s *MenuCardService) GeneratePNG(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, chromedpCancel, allocCancel := newChromeContext(ctx)
	defer allocCancel()
	defer chromedpCancel()

	var pngBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(900, 1600),
		chromedp.Navigate(s.renderURL()),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1500), // Wait for remote product images
		chromedp.FullScreenshot(&pngBuf, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBuf, nil
}

// GeneratePDF prints the rendered menu card to PDF.
func (s *MenuCardService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, chromedpCancel, allocCancel := newChromeContext(ctx)
	defer allocCancel()
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(s.renderURL()),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1500),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
