package access

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const directCSS = `
body { font-family: 'Inter', sans-serif; background: #0A1929; color: #E2E8F0; display: flex; flex-direction: column; align-items: center; justify-content: center; min-height: 100vh; margin: 0; padding: 20px; text-align: center; }
.container { max-width: 800px; background: rgba(10, 25, 41, 0.6); backdrop-filter: blur(10px); border: 1px solid rgba(255, 255, 255, 0.05); padding: 30px; border-radius: 12px; box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3); }
h1 { color: #4DA8FF; margin-top: 0; font-size: 2.5rem; }
.gradient-text { background: linear-gradient(120deg, #4DA8FF, #64FFDA); -webkit-background-clip: text; background-clip: text; -webkit-text-fill-color: transparent; }
p { font-size: 1.2rem; line-height: 1.6; margin-bottom: 20px; }
.btn { display: inline-block; background: linear-gradient(135deg, #4DA8FF 0%, #0B62CC 100%); color: white; text-decoration: none; padding: 12px 25px; border-radius: 8px; font-weight: 600; margin: 10px; transition: all 0.3s ease; }
.btn:hover { transform: translateY(-3px); box-shadow: 0 5px 15px rgba(77, 168, 255, 0.4); }
.links { margin-top: 30px; }
`

const debugCSS = `
body { font-family: monospace; background: #0a0a0a; color: #e0e0e0; padding: 20px; }
.container { max-width: 800px; margin: 0 auto; }
h1 { color: #4DA8FF; }
.data { background: #111; padding: 15px; border-radius: 5px; overflow-x: auto; }
.key { color: #64FFDA; }
.value { color: #FF7E67; }
a { color: #4DA8FF; text-decoration: none; }
a:hover { text-decoration: underline; }
.routes { margin-top: 20px; }
.route { background: #111; padding: 10px; margin: 5px 0; border-radius: 3px; }
`

const plainCSS = `
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
.container { max-width: 800px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
h1 { color: #4DA8FF; }
.success { color: green; }
.error { color: red; }
`

const moduleCheckJS = `
window.addEventListener('load', function () {
  const result = document.getElementById('module-test-result');
  try {
    if (typeof import.meta !== 'undefined') {
      result.innerHTML = '<span class="success">Module scripts are processed correctly!</span>';
    } else {
      result.innerHTML = '<span class="error">Module scripts are not supported</span>';
    }
  } catch (error) {
    result.innerHTML = '<span class="error">Error: ' + error.message + '</span>';
  }
});
`

// Field is one labelled value on the debug page.
type Field struct {
	Key   string
	Value string
}

// Route is one entry in the debug page route list.
type Route struct {
	Path        string
	Description string
}

// KnownRoutes are the routes advertised on the debug page.
var KnownRoutes = []Route{
	{"/", "Main Application"},
	{"/direct", "Direct Access Page"},
	{"/vite-test", "Module Script Test"},
	{"/api/health", "API Health Check"},
	{"/api/ping", "API Ping Test"},
	{"/api/info", "API Info"},
	{"/api/env", "Environment Info"},
	{"/api/debug", "Filesystem and Process Diagnostics"},
	{"/api/test-html", "Test HTML Page"},
	{"/metrics", "Prometheus Metrics"},
}

func page(title, css string, head []g.Node, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(css)),
				g.Group(head),
			),
			Body(body...),
		),
	})
}

// DirectPage is the informational page unmatched paths redirect to.
func DirectPage() g.Node {
	return page("Pritam - Portfolio Direct Access", directCSS, nil,
		Div(
			Class("container"),
			H1(
				g.Text("Welcome to "),
				Span(Class("gradient-text"), g.Text("Pritam's Portfolio")),
			),
			P(g.Text("This is a direct access page served without the asset pipeline.")),
			P(g.Text("If you're seeing this page, the server is working properly.")),
			Div(
				Class("links"),
				P(g.Text("Application access points:")),
				A(Href("/"), Class("btn"), g.Text("Main Application")),
				A(Href("/api/health"), Class("btn"), g.Text("API Health Check")),
				A(Href("/api/test-html"), Class("btn"), g.Text("Test HTML Page")),
			),
		),
	)
}

// DebugPage lists request and environment facts plus the known routes.
func DebugPage(fields []Field, routes []Route) g.Node {
	lines := make([]g.Node, 0, len(fields)*2)
	for i, f := range fields {
		if i > 0 {
			lines = append(lines, g.Text("\n"))
		}
		lines = append(lines, g.Group([]g.Node{
			Span(Class("key"), g.Text(f.Key)),
			g.Text(": "),
			Span(Class("value"), g.Text(f.Value)),
		}))
	}

	return page("Application Debug", debugCSS, nil,
		Div(
			Class("container"),
			H1(g.Text("Application Debug Information")),
			H2(g.Text("Environment")),
			Div(Class("data"), Pre(lines...)),
			H2(g.Text("Available Routes")),
			Div(
				Class("routes"),
				g.Map(routes, func(r Route) g.Node {
					return Div(
						Class("route"),
						A(Href(r.Path), g.Text(r.Path)),
						g.Text(" - "+r.Description),
					)
				}),
			),
		),
	)
}

// ModuleTestPage checks that the browser executes module scripts.
func ModuleTestPage() g.Node {
	return page("Module Script Test", plainCSS,
		[]g.Node{Script(Type("module"), g.Raw(moduleCheckJS))},
		Div(
			Class("container"),
			H1(g.Text("Module Script Test")),
			P(g.Text("This page tests if module scripts are processed correctly.")),
			P(g.Text("Result: "), Span(ID("module-test-result"), g.Text("Testing..."))),
			Div(
				P(A(Href("/"), g.Text("Back to main application"))),
				P(A(Href("/direct"), g.Text("Go to direct access page"))),
			),
		),
	)
}

// TestHTMLPage is the static verification page.
func TestHTMLPage() g.Node {
	return page("Test Page", plainCSS, nil,
		Div(
			Class("container"),
			H1(g.Text("The server is working correctly!")),
			P(g.Text("If you can see this page, then the server is responding properly.")),
			P(
				g.Text("The main application should be available at "),
				A(Href("/"), g.Text("/")),
			),
		),
	)
}
