package view

import "html/template"

// Element ids of the widget page
const (
	CityNameID        = "city-name"
	TimeID            = "time"
	TemperatureID     = "temperature"
	ConditionID       = "condition"
	ForecastWrapperID = "forecast-wrapper"
	HumidityID        = "humidity"
	WindSpeedID       = "wind-speed"
	UVIndexID         = "uv-index"
	FeelsLikeID       = "feels-like"
	CitySuggestionsID = "city-suggestions"
	LocationHistoryID = "location-history"
	LoadingID         = "loading"
	ErrorID           = "error"
)

// PanelIDs lists every panel in page order
var PanelIDs = []string{
	CityNameID, TimeID, TemperatureID, ConditionID, ForecastWrapperID,
	HumidityID, WindSpeedID, UVIndexID, FeelsLikeID,
	CitySuggestionsID, LocationHistoryID, LoadingID, ErrorID,
}

const pinIcon = `<svg fill="currentColor" height="24px" viewBox="0 0 256 256" width="24px" xmlns="http://www.w3.org/2000/svg"><path d="M128,16a88.1,88.1,0,0,0-88,88c0,31.4,14.51,64.68,42,96.25a254.19,254.19,0,0,0,41.45,38.3,8,8,0,0,0,9.18,0A254.19,254.19,0,0,0,174,200.25c27.45-31.57,42-64.85,42-96.25A88.1,88.1,0,0,0,128,16Zm0,120a32,32,0,1,1,32-32A32,32,0,0,1,128,136Z"></path></svg>`

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"pin": func() template.HTML { return template.HTML(pinIcon) },
	"inc": func(i int) int { return i + 1 },
}).Parse(`
{{define "condition"}}{{if .Icon}}<img src="{{.Icon}}" alt="{{.Text}}" class="weather-icon-img">{{end}}<p>{{.Text}}</p>{{end}}

{{define "forecast"}}{{range $i, $d := .}}<div class="day day-{{inc $i}}">
  <p class="day-name">{{$d.Name}}</p>
  <div class="weather-icon"><img src="{{$d.Icon}}" alt="{{$d.Text}}" class="weather-icon-img"></div>
  <p class="temp-range"><span class="max-temp">{{$d.Max}}</span>/<span class="min-temp">{{$d.Min}}</span></p>
</div>{{end}}{{end}}

{{define "suggestions"}}{{if .Items}}{{range .Items}}<div class="city-suggestion-item" data-city="{{.Name}}">
  <span class="suggestion-text">{{.Name}}</span>
  <span class="suggestion-country">{{.Country}}</span>
</div>{{end}}{{else}}<div class="no-suggestions">{{.Placeholder}}</div>{{end}}{{end}}

{{define "history"}}{{range .Items}}<div class="city-location{{if .Active}} active{{end}}" data-city="{{.Name}}">
  <div class="icon">{{pin}}</div>
  <div class="city-info">
    <p class="city-name">{{.Name}}</p>
    <p class="weather">Click to view</p>
  </div>
</div>{{end}}{{end}}
`))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Weather</title>
</head>
<body data-base="{{.BasePath}}">
  <div id="loading" class="loading{{if .Panels.loading.Visible}} show{{end}}">{{.Panels.loading.HTML}}</div>
  <div id="error" class="error{{if .Panels.error.Visible}} show{{end}}">{{.Panels.error.HTML}}</div>
  <form class="city-field-wrapper" method="get" action="{{.BasePath}}/">
    <input id="city" name="city" type="text" placeholder="Search city" value="" autocomplete="off">
    <div id="city-suggestions" class="city-suggestions{{with index .Panels "city-suggestions"}}{{if .Visible}} show{{end}}{{end}}">{{with index .Panels "city-suggestions"}}{{.HTML}}{{end}}</div>
  </form>
  <section class="weather">
    <h1 id="city-name">{{with index .Panels "city-name"}}{{.HTML}}{{end}}</h1>
    <p id="time" class="time">{{.Panels.time.HTML}}</p>
    <div class="temprature">
      <h2 id="temperature">{{.Panels.temperature.HTML}}</h2>
      <div id="condition">{{.Panels.condition.HTML}}</div>
    </div>
  </section>
  <section id="forecast-wrapper" class="forecast-wrapper">{{with index .Panels "forecast-wrapper"}}{{.HTML}}{{end}}</section>
  <section class="extra-info">
    <p>Humidity <span id="humidity">{{.Panels.humidity.HTML}}</span></p>
    <p>Wind <span id="wind-speed">{{with index .Panels "wind-speed"}}{{.HTML}}{{end}}</span></p>
    <p>UV <span id="uv-index">{{with index .Panels "uv-index"}}{{.HTML}}{{end}}</span></p>
    <p>Feels like <span id="feels-like">{{with index .Panels "feels-like"}}{{.HTML}}{{end}}</span></p>
  </section>
  <aside id="location-history" class="location-history">{{with index .Panels "location-history"}}{{.HTML}}{{end}}</aside>
</body>
</html>
`))
