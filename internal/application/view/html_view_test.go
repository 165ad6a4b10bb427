package view

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/pkg/util/weatherutils"
)

var (
	london  = entity.Location{Name: "London", LocalTime: "2024-01-15 14:05"}
	current = entity.CurrentConditions{
		TemperatureC: 7.2,
		FeelsLikeC:   4.1,
		Humidity:     81,
		WindKph:      14.4,
		UltraViolet:  2,
		Condition:    entity.Condition{Text: "Partly cloudy", Icon: "https://cdn.weatherapi.com/weather/64x64/day/116.png"},
	}
	days = []entity.ForecastDay{
		{Date: "2024-01-15", MaxTempC: 8.1, MinTempC: 2.3, Condition: entity.Condition{Text: "Sunny", Icon: "https://cdn/113.png"}},
		{Date: "2024-01-16", MaxTempC: 6, MinTempC: 1, Condition: entity.Condition{Text: "Rain", Icon: "https://cdn/296.png"}},
	}
)

func renderAll(v *HTMLView) {
	v.RenderWeather(london, current, weatherutils.Celsius)
	v.RenderForecast(days, weatherutils.Celsius)
	v.RenderMetrics(current, weatherutils.Celsius)
	v.RenderRecentSearches([]string{"London", "Paris"}, "London")
}

func TestRenderingIsIdempotent(t *testing.T) {
	v := NewHTMLView()
	renderAll(v)
	first := v.Panels()
	renderAll(v)

	if !reflect.DeepEqual(first, v.Panels()) {
		t.Fatal("second render pass changed the panels")
	}
	if got := strings.Count(string(first[ForecastWrapperID].HTML), `class="day day-`); got != 2 {
		t.Fatalf("expected 2 forecast entries, got %d", got)
	}
}

func TestPanelsContent(t *testing.T) {
	v := NewHTMLView()
	renderAll(v)
	panels := v.Panels()

	want := map[string]string{
		CityNameID:    "London",
		TimeID:        "Monday 2:05 PM",
		TemperatureID: "7°C",
		HumidityID:    "81%",
		WindSpeedID:   "14.4 km/h",
		UVIndexID:     "2",
		FeelsLikeID:   "4°C",
	}
	for id, text := range want {
		if got := string(panels[id].HTML); got != text {
			t.Errorf("%s: expected %q, got %q", id, text, got)
		}
	}
	if !strings.Contains(string(panels[ForecastWrapperID].HTML), `<span class="max-temp">8°C</span>`) {
		t.Errorf("unexpected forecast %s", panels[ForecastWrapperID].HTML)
	}
	history := string(panels[LocationHistoryID].HTML)
	if strings.Count(history, "city-location active") != 1 || !strings.Contains(history, `data-city="London"`) {
		t.Errorf("unexpected history %s", history)
	}
}

func TestSuggestionsPlaceholderAndHide(t *testing.T) {
	v := NewHTMLView()
	v.RenderSuggestions(nil, "No cities found")

	panel := v.Panels()[CitySuggestionsID]
	if !panel.Visible || !strings.Contains(string(panel.HTML), `<div class="no-suggestions">No cities found</div>`) {
		t.Fatalf("unexpected suggestions panel %+v", panel)
	}

	v.HideSuggestions()
	if v.Panels()[CitySuggestionsID].Visible {
		t.Fatal("suggestions still visible")
	}
}

func TestUserTextIsEscaped(t *testing.T) {
	v := NewHTMLView()
	v.RenderRecentSearches([]string{"<script>x</script>"}, "")
	v.ShowError("Error fetching weather for <b>")

	if strings.Contains(string(v.Panels()[LocationHistoryID].HTML), "<script>") {
		t.Fatal("history not escaped")
	}
	if got := string(v.Panels()[ErrorID].HTML); got != "Error fetching weather for &lt;b&gt;" {
		t.Fatalf("error not escaped: %s", got)
	}
}

func TestErrorAndLoadingVisibility(t *testing.T) {
	v := NewHTMLView()
	v.ShowLoading(true)
	v.ShowError("boom")
	if !v.Panels()[LoadingID].Visible || !v.Panels()[ErrorID].Visible {
		t.Fatal("expected loading and error visible")
	}
	v.ShowLoading(false)
	v.ShowError("")
	if v.Panels()[LoadingID].Visible || v.Panels()[ErrorID].Visible {
		t.Fatal("expected loading and error hidden")
	}
}

func TestWritePageContainsEveryPanel(t *testing.T) {
	v := NewHTMLView()
	renderAll(v)

	var buf bytes.Buffer
	if err := v.WritePage(&buf, "/weather-widget"); err != nil {
		t.Fatalf("write page: %v", err)
	}
	html := buf.String()
	for _, id := range PanelIDs {
		if !strings.Contains(html, `id="`+id+`"`) {
			t.Errorf("page is missing element %s", id)
		}
	}
	if !strings.Contains(html, `<h1 id="city-name">London</h1>`) {
		t.Error("weather panel not embedded")
	}
	if !strings.Contains(html, `action="/weather-widget/"`) || !strings.Contains(html, `value=""`) {
		t.Error("search form not rendered with an empty input")
	}
}
