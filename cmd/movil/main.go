package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/invorya-movil/internal/application/menu"
	"github.com/jhoicas/invorya-movil/internal/application/session"
	"github.com/jhoicas/invorya-movil/internal/infrastructure/credstore"
	"github.com/jhoicas/invorya-movil/internal/infrastructure/restapi"
	"github.com/jhoicas/invorya-movil/pkg/config"
	"github.com/jhoicas/invorya-movil/pkg/logger"
)

// Shell de terminal del cliente Invorya: construye el Session Manager, hace
// bootstrap, y renderiza según el gate — carga, login o menú filtrado por rol.
// Toda la lógica vive en internal/; aquí solo hay cableado y render.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn", // en terminal interactiva solo interesan problemas
	})

	store, err := credstore.NewFileStore(cfg.Credentials.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de credenciales")
	}

	api := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	mgr := session.NewManager(store, api, log, session.Config{
		BootstrapTimeout: cfg.API.BootstrapTimeout(),
	})
	gate := session.NewGate()

	updates := mgr.Subscribe()

	fmt.Println("Invorya Móvil — cargando sesión...")
	ctx := context.Background()
	mgr.Bootstrap(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		// Drenar el último estado publicado antes de renderizar.
		for {
			select {
			case snap := <-updates:
				gate.Apply(snap)
				continue
			default:
			}
			break
		}

		switch gate.Current() {
		case session.StateCargando:
			// Bootstrap es síncrono aquí; si se llega a ver este estado es
			// solo el snapshot inicial aún sin consumir.
			gate.Apply(mgr.Snapshot())
			continue

		case session.StateNoAutenticado:
			fmt.Print("\nemail (o 'salir'): ")
			if !scanner.Scan() {
				return
			}
			email := strings.TrimSpace(scanner.Text())
			if email == "salir" {
				return
			}
			fmt.Print("password: ")
			if !scanner.Scan() {
				return
			}
			password := strings.TrimSpace(scanner.Text())

			if err := mgr.Login(ctx, email, password); err != nil {
				fmt.Println("login fallido:", err)
			}

		case session.StateAutenticado:
			snap := mgr.Snapshot()
			fmt.Printf("\nSesión: %s <%s> (%s)\n", snap.Profile.Nombre, snap.Profile.Email, snap.Profile.Rol)
			for i, e := range menu.Visibles(snap.Profile.Rol, menu.Catalogo()) {
				fmt.Printf("  %d. %s  [%s]\n", i+1, e.Nombre, e.Ruta)
			}
			fmt.Print("comando (numero|logout|salir): ")
			if !scanner.Scan() {
				return
			}
			cmd := strings.TrimSpace(scanner.Text())
			switch cmd {
			case "salir":
				return
			case "logout":
				_ = mgr.Logout(ctx)
			default:
				visibles := menu.Visibles(snap.Profile.Rol, menu.Catalogo())
				for i, e := range visibles {
					if cmd == fmt.Sprintf("%d", i+1) {
						gate.Push(e.Ruta)
						fmt.Println("→", e.Ruta, "(pantalla servida por el backend)")
					}
				}
			}
		}
	}
}
