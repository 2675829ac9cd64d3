// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	httpapi "shoplist/internal/adapters/in/http"
	"shoplist/internal/adapters/in/http/handler"
	"shoplist/internal/adapters/in/http/middleware"
	fsrepo "shoplist/internal/adapters/out/firestore"
	"shoplist/internal/application/session"
	shoppinglistuc "shoplist/internal/application/usecase/shoppinglist"
	cataloginfra "shoplist/internal/infra/catalog"
	"shoplist/internal/infra/config"
	firestoreinfra "shoplist/internal/infra/firestore"
)

// Container wires infra → repositories → usecases → router.
type Container struct {
	Config  *config.Config
	FS      *firestoreinfra.ClientWrapper
	Handler http.Handler
}

// New builds the full application graph.
func New(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}

	authClient, err := newFirebaseAuth(ctx, cfg)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}

	products, err := cataloginfra.LoadFile(cfg.CatalogFile)
	if err != nil {
		// The catalog is presentation data; the list protocol still works
		// without it, so boot continues with an empty catalog.
		log.Printf("[di] WARN: catalog load failed: %v (continuing with empty catalog)", err)
		products = nil
	}

	sessions := session.NewRegistry()
	repo := fsrepo.NewShoppingListRepositoryFS(fs.Client)
	lists := shoppinglistuc.New(repo)

	router := httpapi.NewRouter(httpapi.Deps{
		Auth:      &middleware.AuthMiddleware{FirebaseAuth: authClient},
		Catalog:   &handler.CatalogHandler{Products: products},
		Cart:      &handler.CartHandler{Sessions: sessions},
		Favorites: &handler.FavoritesHandler{Sessions: sessions},
		Lists: &handler.ListsHandler{
			Sessions:     sessions,
			Lists:        lists,
			ShareBaseURL: cfg.ShareBaseURL,
		},
		Share:         &handler.ShareHandler{Lists: lists},
		AllowedOrigin: cfg.AllowedOrigin,
	})

	return &Container{
		Config:  cfg,
		FS:      fs,
		Handler: router,
	}, nil
}

func newFirebaseAuth(ctx context.Context, cfg *config.Config) (*middleware.FirebaseAuthClient, error) {
	fbCfg := &firebase.Config{ProjectID: cfg.FirebaseProjectID}

	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}

// Close releases infra resources.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.FS != nil {
		if err := c.FS.Close(); err != nil {
			log.Printf("[di] firestore close: %v", err)
		}
	}
}
