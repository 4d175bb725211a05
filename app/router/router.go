package router

import (
	"net/http"
	"strings"

	"ds-burguer/app/controller"
	"ds-burguer/utils"
)

type Controllers struct {
	Menu       *controller.MenuController
	Session    *controller.SessionController
	Checkout   *controller.CheckoutController
	Background *controller.BackgroundController
	Studio     *controller.StudioController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// NewMux builds the storefront route table.
func NewMux(controllers *Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Prometheus scrape endpoint
	mux.Handle("/metrics", utils.MetricsHandler())

	// Full menu
	mux.HandleFunc("/menu", controllers.Menu.GetMenu)

	// Menu card and per-category listings
	mux.HandleFunc("/menu/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/menu/") == "card" {
			controllers.Menu.MenuCard(w, r)
			return
		}
		controllers.Menu.GetCategory(w, r)
	})

	// Create session
	mux.HandleFunc("/sessions", controllers.Session.CreateSession)

	// Session-scoped routes: cart, category, checkout dialog, AI studio
	mux.HandleFunc("/sessions/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/sessions/")
		id, rest, _ := strings.Cut(path, "/")
		if id == "" {
			http.Error(w, "Session id is required", http.StatusBadRequest)
			return
		}

		switch rest {
		case "":
			controllers.Session.GetSession(w, r, id)
		case "category":
			controllers.Session.SetCategory(w, r, id)
		case "cart":
			controllers.Session.UpdateCart(w, r, id)
		case "checkout/open":
			controllers.Checkout.Open(w, r, id)
		case "checkout/cancel":
			controllers.Checkout.Cancel(w, r, id)
		case "checkout/submit":
			controllers.Checkout.Submit(w, r, id)
		case "studio/edit":
			controllers.Studio.Edit(w, r, id)
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	})

	// Background preference (GET/PUT/DELETE)
	mux.HandleFunc("/background", controllers.Background.Handle)

	return mux
}

// SetupRoutes registers the storefront routes on the default mux.
func SetupRoutes(controllers *Controllers) {
	http.Handle("/", NewMux(controllers))
}
