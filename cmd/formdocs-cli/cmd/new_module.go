package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
)

const modulesPath = "internal/app/modules.go"

var moduleNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

func newModuleCmd() *cobra.Command {
	var (
		name string
		root string
	)

	cmd := &cobra.Command{
		Use:   "new-module",
		Short: "Scaffold a new site module",
		Long: `Creates a new module with boilerplate for a module definition and a
page-rendering handler, and registers it in internal/app/modules.go.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("module name is required: --name=<module-name>")
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			fs := afero.NewBasePathFs(afero.NewOsFs(), abs)

			if err := generateModule(fs, name); err != nil {
				return fmt.Errorf("failed to generate module: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created module '%s' in internal/modules/%s/\n", name, name)

			if err := registerModule(fs, name); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Automatic registration failed: %v\n", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "Add %s.New() to NewModules in %s manually.\n", name, modulesPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Registered %s.New() in %s\n", name, modulesPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "The name of the new module (e.g., 'glossary')")
	cmd.Flags().StringVar(&root, "root", ".", "Repository root")
	return cmd
}

type templateData struct {
	Name       string
	PascalName string
	ModulePath string
}

func generateModule(fs afero.Fs, name string) error {
	if !moduleNamePattern.MatchString(name) {
		return fmt.Errorf("invalid module name %q: use lower-case letters and digits", name)
	}
	modPath, err := goModulePath(fs)
	if err != nil {
		return err
	}
	data := templateData{
		Name:       name,
		PascalName: cases.Title(language.English).String(name),
		ModulePath: modPath,
	}

	moduleDir := filepath.Join("internal", "modules", name)
	if exists, _ := afero.DirExists(fs, moduleDir); exists {
		return fmt.Errorf("module directory %s already exists", moduleDir)
	}
	if err := fs.MkdirAll(moduleDir, 0o755); err != nil {
		return fmt.Errorf("failed to create module directory: %w", err)
	}
	if err := generateFile(fs, filepath.Join(moduleDir, "module.go"), moduleTemplate, data); err != nil {
		return err
	}
	return generateFile(fs, filepath.Join(moduleDir, "handler.go"), handlerTemplate, data)
}

func generateFile(fs afero.Fs, path, tmpl string, data templateData) error {
	t, err := template.New(filepath.Base(path)).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}
	return afero.WriteFile(fs, path, src, 0o644)
}

// goModulePath reads the module path from go.mod.
func goModulePath(fs afero.Fs) (string, error) {
	f, err := fs.Open("go.mod")
	if err != nil {
		return "", fmt.Errorf("open go.mod: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "module "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errors.New("go.mod has no module directive")
}

// registerModule adds name.New() to the module slice built in NewModules.
func registerModule(fs afero.Fs, name string) error {
	modPath, err := goModulePath(fs)
	if err != nil {
		return err
	}
	src, err := afero.ReadFile(fs, modulesPath)
	if err != nil {
		return err
	}
	out, err := addModule(src, name, modPath+"/internal/modules/"+name)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, modulesPath, out, 0o644)
}

func addModule(src []byte, name, importPath string) ([]byte, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, modulesPath, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", modulesPath, err)
	}
	astutil.AddImport(fset, node, importPath)

	added := false
	ast.Inspect(node, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "NewModules" {
			return true
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			lit, ok := n.(*ast.CompositeLit)
			if !ok || added {
				return !added
			}
			arr, ok := lit.Type.(*ast.ArrayType)
			if !ok {
				return true
			}
			if sel, ok := arr.Elt.(*ast.SelectorExpr); !ok || sel.Sel.Name != "Module" {
				return true
			}
			lit.Elts = append(lit.Elts, &ast.CallExpr{
				Fun: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("New")},
			})
			added = true
			return false
		})
		return false
	})
	if !added {
		return nil, fmt.Errorf("no module slice found in NewModules")
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return nil, fmt.Errorf("failed to format AST: %w", err)
	}
	return buf.Bytes(), nil
}

const moduleTemplate = `package {{.Name}}

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"{{.ModulePath}}/internal/module"
	"{{.ModulePath}}/internal/registry"
)

// {{.PascalName}}Module implements the module.Module interface.
type {{.PascalName}}Module struct {
	module.BaseModule
}

// New creates a new instance of the {{.PascalName}}Module.
func New() *{{.PascalName}}Module {
	return &{{.PascalName}}Module{}
}

// Name returns the unique name for the module.
func (m *{{.PascalName}}Module) Name() string {
	return "{{.Name}}"
}

// Boot registers the HTTP routes for the module.
func (m *{{.PascalName}}Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting {{.PascalName}}Module: Setting up routes...")
	h := NewHandler(registry.MustGet(reg, registry.RendererKey))
	g.GET("/{{.Name}}", h.Page)
	return nil
}
`

const handlerTemplate = `package {{.Name}}

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"{{.ModulePath}}/internal/rendering"
	"{{.ModulePath}}/internal/view"
	"{{.ModulePath}}/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Handler manages the HTTP requests for the {{.Name}} module.
type Handler struct {
	renderer rendering.Renderer
}

// NewHandler creates a new handler.
func NewHandler(renderer rendering.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Page renders the main page for the {{.Name}} module.
func (hd *Handler) Page(c echo.Context) error {
	p, err := view.NewPage(c, "{{.PascalName}}", "")
	if err != nil {
		return err
	}
	return hd.renderer.RenderPage(c, http.StatusOK, layouts.Base(p,
		h.H1(g.Text("{{.PascalName}}")),
	))
}
`
