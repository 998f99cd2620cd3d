package render

// ── Table fragment ────────────────────────────────────────────────────────────

const tmplTable = `
{{define "table"}}<table>
  <thead>
    <tr>
      <th>Booking No.</th>
      <th>Flight No.</th>
      <th>Hotel</th>
      <th>Pick-Up time</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <td>{{.ID}}</td>
      <td>{{.Flight}}</td>
      <td>{{.HotelName}}</td>
      <td>{{.Time}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
{{- if gt .TotalPages 1}}
<div class="auto-page-info">Page {{.CurrentPage}} of {{.TotalPages}}</div>
{{- end}}{{end}}
`

// ── Kiosk page ────────────────────────────────────────────────────────────────

const tmplPage = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
{{- if gt .RefreshSeconds 0}}
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
{{- end}}
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Segoe UI',Roboto,sans-serif;background:#0b2545;color:#f4f4f9;font-size:20px}
header{display:flex;justify-content:space-between;align-items:center;padding:20px 32px;background:#13315c}
h1{font-size:30px;font-weight:700}
main{padding:24px 32px}
table{width:100%;border-collapse:collapse;background:#fff;color:#0b2545}
th{background:#8da9c4;text-align:left;padding:12px 16px;font-size:18px;text-transform:uppercase}
td{padding:10px 16px;border-bottom:1px solid #d5dde8}
tr:nth-child(even) td{background:#eef4ed}
.auto-page-info{text-align:right;margin-top:12px;color:#8da9c4}
.actions{display:flex;gap:12px}
button{font-size:20px;padding:12px 24px;border:0;border-radius:8px;cursor:pointer;background:#f4a259;color:#0b2545;font-weight:700}
button.secondary{background:#8da9c4}
.search-form{display:flex;gap:12px;margin-bottom:24px}
.search-form input{flex:1;font-size:24px;padding:12px;border-radius:8px;border:0}
.legend{color:#8da9c4;margin-bottom:24px}
.panel{background:#13315c;border-radius:8px;padding:24px}
.panel dl{display:grid;grid-template-columns:220px 1fr;gap:8px 16px}
.panel dt{color:#8da9c4}
.panel.miss img{margin-top:16px;width:200px;height:200px;background:#fff}
</style>
</head>
<body>
<header>
  <h1 id="main-title">{{.Title}}</h1>
  <div class="actions">
{{- if eq .Screen "home"}}
    <form method="post" action="/search/start"><button type="submit">Find my booking</button></form>
    <form method="post" action="/adventure"><button type="submit" class="secondary">Adventures</button></form>
{{- else}}
    <form method="post" action="/home"><button type="submit" class="secondary">Back</button></form>
{{- end}}
  </div>
</header>
<main>
{{- if eq .Screen "home"}}
<div id="table-container">{{.Container}}</div>
{{- else}}
<form class="search-form" method="post" action="/search">
  <input type="text" name="query" value="{{.Search.Query}}" placeholder="Booking No." autocomplete="off" autofocus>
  <button type="submit">Search</button>
</form>
{{- if .Search.LegendVisible}}
<p class="legend">Type the booking number from your confirmation e-mail and press Search.</p>
{{- end}}
{{- if .Search.ResultVisible}}
<div id="search-result">
{{- if eq .Search.Outcome "found"}}
  <div class="panel hit">
    <dl>
      <dt>Booking No.</dt><dd>{{.Search.Booking.ID}}</dd>
      <dt>Flight No.</dt><dd>{{.Search.Booking.Flight}}</dd>
      <dt>Hotel</dt><dd>{{.Search.Booking.HotelName}}</dd>
      <dt>Pick-Up time</dt><dd>{{.Search.Booking.Time}}</dd>
    </dl>
    <p class="legend">{{.Search.DatasetTitle}}</p>
  </div>
{{- else}}
  <div class="panel miss">
    <p>{{.Search.ContactMessage}}</p>
    {{- if .Search.QRImageURL}}
    <img src="{{.Search.QRImageURL}}" alt="Contact QR code">
    {{- end}}
  </div>
{{- end}}
</div>
{{- end}}
{{- end}}
</main>
</body>
</html>
{{end}}`
