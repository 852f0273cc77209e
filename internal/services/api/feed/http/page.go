package http

// homeHTML is the status page, styled after the original landing page
const homeHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <title>SensuTV</title>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <style>
    body{font-family:system-ui,Arial;margin:0;background:#0b0b10;color:#fff}
    .wrap{max-width:900px;margin:0 auto;padding:24px}
    .card{background:#141421;border:1px solid #2a2a3a;border-radius:16px;padding:18px;margin:14px 0}
    .btn{display:inline-block;padding:12px 16px;border-radius:14px;text-decoration:none;margin-right:10px}
    .btn1{background:#6d28d9;color:#fff}
    .btn2{background:#ff3d8a;color:#fff}
    .muted{color:#b9b9c9}
    .grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:12px}
    .pill{display:inline-block;padding:4px 10px;border-radius:999px;border:1px solid #2a2a3a;color:#cfcfe6;font-size:12px}
    .mono{font-family:ui-monospace,Menlo,Consolas,monospace;font-size:12px;color:#cfcfe6}
  </style>
</head>
<body>
  <div class="wrap">
    <h2>SensuTV</h2>
    <div class="muted">Bot en Telegram + media en almacenamiento S3.</div>

    <div class="card">
      <h3>Entra... y mira lo que otros no ven 🔥</h3>
      <div class="muted">Previews gratis. Si quieres lo completo... desbloquea Premium.</div>
      <div style="margin-top:14px">
        <a class="btn btn1" href="/feed?tier=free">Ver previews gratis</a>
        <a class="btn btn2" href="/premium">Desbloquear Premium</a>
      </div>
      {{if .BotPayLink}}
      <div style="margin-top:12px" class="muted">
        Link bot: <span class="mono">{{.BotPayLink}}</span>
      </div>
      {{end}}
      <div style="margin-top:12px" class="muted">
        Almacenamiento activo: <span class="mono">{{.Store}}</span>
      </div>
    </div>

    <div class="card">
      <h3>Últimas subidas</h3>
      <div class="muted">Esto se alimenta de los registros creados desde el bot.</div>
      <div class="grid" style="margin-top:12px">
        {{range .Items}}
        <div class="card" style="margin:0">
          <div class="pill">{{.ModelName}} • {{.Country}}</div>
          <div style="margin-top:10px"><b>{{.Title}}</b></div>
          <div class="muted" style="margin-top:6px">{{.Type}} • {{.Date}}</div>
          <div class="mono" style="margin-top:10px">s3://{{.Bucket}}/{{.Path}}</div>
        </div>
        {{end}}
      </div>
    </div>

    <div class="card">
      <h3>Estado</h3>
      <div class="muted">Bucket: <b>{{.Bucket}}</b> • Region: <b>{{.Region}}</b></div>
      <div class="muted">API: <a style="color:#bfa7ff" href="/api/models">/api/models</a> • <a style="color:#bfa7ff" href="/api/uploads">/api/uploads</a></div>
    </div>
  </div>
</body>
</html>
`
