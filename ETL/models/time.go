package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeOfDay representa una hora del día sin fecha asociada (HH:MM).
// Es la representación canónica de hora en todo el pipeline.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay valida hora y minuto y construye un TimeOfDay
func NewTimeOfDay(hour, minute int) (TimeOfDay, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// Minutes devuelve los minutos transcurridos desde medianoche
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before indica si t es estrictamente anterior a otra hora
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// After indica si t es estrictamente posterior a otra hora
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t.Minutes() > o.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SQL devuelve la hora en el formato TIME de MySQL (HH:MM:SS)
func (t TimeOfDay) SQL() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// MarshalText permite serializar la hora en CSV y plantillas
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Valores centinela que equivalen a un valor ausente al leer o escribir
var sentinelasNulos = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"nat":  true,
	"null": true,
}

// EsSentinelaNula indica si una cadena representa un valor ausente
func EsSentinelaNula(s string) bool {
	return sentinelasNulos[strings.ToLower(strings.TrimSpace(s))]
}

var horaTexto = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// HoraStrategy es una estrategia nombrada de conversión a TimeOfDay.
// Cada estrategia devuelve (hora, true) si reconoce el valor, o false
// para ceder el turno a la siguiente.
type HoraStrategy struct {
	Nombre    string
	Convertir func(v any) (TimeOfDay, bool)
}

// HoraStrategies es la cadena de estrategias, en orden de prioridad:
// valor ya canónico, time.Time del driver, minutos desde medianoche
// (TIME almacenado como duración) y texto "HH:MM[:SS]".
// La primera que reconoce el valor gana.
var HoraStrategies = []HoraStrategy{
	{
		Nombre: "canonica",
		Convertir: func(v any) (TimeOfDay, bool) {
			switch h := v.(type) {
			case TimeOfDay:
				return h, true
			case *TimeOfDay:
				if h == nil {
					return TimeOfDay{}, false
				}
				return *h, true
			}
			return TimeOfDay{}, false
		},
	},
	{
		Nombre: "time.Time",
		Convertir: func(v any) (TimeOfDay, bool) {
			tt, ok := v.(time.Time)
			if !ok {
				return TimeOfDay{}, false
			}
			return TimeOfDay{Hour: tt.Hour(), Minute: tt.Minute()}, true
		},
	},
	{
		Nombre: "minutos",
		Convertir: func(v any) (TimeOfDay, bool) {
			var minutos int
			switch n := v.(type) {
			case int:
				minutos = n
			case int64:
				minutos = int(n)
			case time.Duration:
				minutos = int(n / time.Minute)
			default:
				return TimeOfDay{}, false
			}
			return NewTimeOfDay(minutos/60, minutos%60)
		},
	},
	{
		Nombre: "texto",
		Convertir: func(v any) (TimeOfDay, bool) {
			var s string
			switch x := v.(type) {
			case string:
				s = x
			case []byte:
				s = string(x)
			default:
				return TimeOfDay{}, false
			}
			s = strings.TrimSpace(s)
			if EsSentinelaNula(s) {
				return TimeOfDay{}, false
			}
			m := horaTexto.FindStringSubmatch(s)
			if m == nil {
				return TimeOfDay{}, false
			}
			var h, min int
			fmt.Sscanf(m[1], "%d", &h)
			fmt.Sscanf(m[2], "%d", &min)
			return NewTimeOfDay(h, min)
		},
	},
}

// CoerceHora convierte cualquier forma de almacenamiento de hora a la
// representación canónica. Devuelve el nombre de la estrategia que
// reconoció el valor; valores no interpretables producen nil, nunca error.
func CoerceHora(v any) (*TimeOfDay, string) {
	if v == nil {
		return nil, ""
	}
	for _, e := range HoraStrategies {
		if h, ok := e.Convertir(v); ok {
			return &h, e.Nombre
		}
	}
	return nil, ""
}
