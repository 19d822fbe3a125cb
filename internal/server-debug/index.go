package serverdebug

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zapcore"

	"github.com/zestagio/queue-composer/internal/buildinfo"
	"github.com/zestagio/queue-composer/internal/logger"
)

var indexTemplate = template.Must(template.New("index").Parse(`<html>
<head><title>Queue Composer Debug</title></head>
<body>
	<h2>Queue Composer Debug</h2>
	<p>Version: <code>{{.Version}}</code></p>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel(); return false;">
		<select id="log-level-select">
			{{range .Levels}}<option{{if eq . $.LogLevel}} selected{{end}}>{{.}}</option>{{end}}
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value.toLowerCase()}));
		};
	</script>
</body>
</html>
`))

var selectableLevels = []zapcore.Level{
	zapcore.DebugLevel,
	zapcore.InfoLevel,
	zapcore.WarnLevel,
	zapcore.ErrorLevel,
}

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	pages []page
}

func newIndexPage() *indexPage {
	return &indexPage{}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{Path: path, Description: description})
}

func (i *indexPage) handler(eCtx echo.Context) error {
	levels := make([]string, 0, len(selectableLevels))
	for _, l := range selectableLevels {
		levels = append(levels, l.CapitalString())
	}

	eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	eCtx.Response().WriteHeader(http.StatusOK)

	return indexTemplate.Execute(eCtx.Response(), struct {
		Version  string
		Pages    []page
		Levels   []string
		LogLevel string
	}{
		Version:  buildinfo.Version(),
		Pages:    i.pages,
		Levels:   levels,
		LogLevel: logger.Level.Level().CapitalString(),
	})
}
