// Package datefmt nombres de mes y día en português (pt-BR) para etiquetas del painel.
package datefmt

import (
	"fmt"
	"time"
)

var monthAbbrev = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var weekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado",
}

// MonthAbbrev "Jan", "Fev", ...
func MonthAbbrev(m time.Month) string {
	return monthAbbrev[m-1]
}

// MonthName nombre completo en minúsculas.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// LongDate "sexta-feira, 5 de janeiro de 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), MonthName(t.Month()), t.Year())
}

// MonthYear "janeiro de 2024".
func MonthYear(t time.Time) string {
	return fmt.Sprintf("%s de %d", MonthName(t.Month()), t.Year())
}
