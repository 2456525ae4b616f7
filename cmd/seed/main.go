// cmd/seed/main.go — Carga catálogo y clientes de demo.
// Uso: go run ./cmd/seed
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/model"

	"github.com/shopspring/decimal"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "despensa.db"
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	productos := []model.Producto{
		{Nombre: "Leche entera 1L", Precio: decimal.NewFromFloat(1200), Unidad: model.UnidadUnidad},
		{Nombre: "Pan francés", Precio: decimal.NewFromFloat(2800), Unidad: model.UnidadKg},
		{Nombre: "Queso cremoso", Precio: decimal.NewFromFloat(8500), Unidad: model.UnidadKg},
		{Nombre: "Gaseosa cola 2.25L", Precio: decimal.NewFromFloat(2900), Unidad: model.UnidadLitros},
		{Nombre: "Arroz largo fino 1kg", Precio: decimal.NewFromFloat(1550), Unidad: model.UnidadUnidad},
		{Nombre: "Aceite girasol 900ml", Precio: decimal.NewFromFloat(2300), Unidad: model.UnidadUnidad},
	}
	for i := range productos {
		p := &productos[i]
		res := db.Where("nombre = ?", p.Nombre).FirstOrCreate(p)
		if res.Error != nil {
			log.Fatalf("seed producto %q: %v", p.Nombre, res.Error)
		}
	}

	tel1, tel2 := "3511234567", "3517654321"
	clientes := []model.Cliente{
		{Nombre: "María González", DNI: "28456789", Telefono: &tel1},
		{Nombre: "Jorge Pérez", DNI: "30987654", Telefono: &tel2},
	}
	for i := range clientes {
		c := &clientes[i]
		res := db.Where("dni = ?", c.DNI).FirstOrCreate(c)
		if res.Error != nil {
			log.Fatalf("seed cliente %q: %v", c.Nombre, res.Error)
		}
	}

	fmt.Printf("✅ Seed listo: %d productos, %d clientes\n", len(productos), len(clientes))
}
