// Command token emite un JWT para las rutas de escritura del painel.
//
//	go run ./cmd/token -operator caixa-01 -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/chipaflow-api/pkg/config"
	"github.com/jhoicas/chipaflow-api/pkg/jwt"
)

func main() {
	operator := flag.String("operator", "admin", "operador (claim sub)")
	role := flag.String("role", "admin", "papel: admin | operador")
	exp := flag.Int("exp", 0, "expiración en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *operator, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
