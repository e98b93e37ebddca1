package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const dayFormat = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayBounds expande uma data "2006-01-02" para o dia local inteiro:
// meia-noite até 23:59:59.999 no fuso da loja. Interpretar a data como
// meia-noite UTC perderia agendamentos da noite em fusos atrás de UTC.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	d, err := time.ParseInLocation(dayFormat, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end, nil
}

// RangeBounds devolve [início do dia start, fim do dia end], inclusivo
// nas duas pontas.
func RangeBounds(startDate, endDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, _, err := DayBounds(startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	_, end, err := DayBounds(endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

// DayKey extrai a data local ("2006-01-02") de um instante. É o único
// caminho para agrupar por dia: recalcular a partir de outra fonte
// reintroduz deriva de fuso.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayFormat)
}
