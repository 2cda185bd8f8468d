package overlay

import (
	"fmt"
	"strings"
)

// block is one renderable unit of the generated expression. A run assembles
// the full block sequence first and renders text only at the end, so a
// failed run never emits partial output.
type block interface {
	render(b *strings.Builder)
}

// importsBlock binds the pinned source-fetch helper and the pinned nixpkgs
// snapshot, and selects the target interpreter.
type importsBlock struct {
	fetcherRev    string
	fetcherSHA256 string
	nixpkgsRev    string
	nixpkgsSHA256 string
	pythonAttr    string
}

func (bl importsBlock) render(b *strings.Builder) {
	b.WriteString("let\n")
	b.WriteString("  fetchPypiSrc = builtins.fetchTarball {\n")
	b.WriteString("    name = \"nix-pypi-fetcher\";\n")
	fmt.Fprintf(b, "    url = \"https://github.com/DavHau/nix-pypi-fetcher/tarball/%s\";\n", bl.fetcherRev)
	b.WriteString("    # Hash obtained using `nix-prefetch-url --unpack <url>`\n")
	fmt.Fprintf(b, "    sha256 = \"%s\";\n", bl.fetcherSHA256)
	b.WriteString("  };\n")
	b.WriteString("  fetchPypi = import (fetchPypiSrc);\n")
	b.WriteString("  nixpkgs_src = builtins.fetchTarball {\n")
	b.WriteString("    name = \"nixpkgs\";\n")
	fmt.Fprintf(b, "    url = \"https://github.com/nixos/nixpkgs/tarball/%s\";\n", bl.nixpkgsRev)
	fmt.Fprintf(b, "    sha256 = \"%s\";\n", bl.nixpkgsSHA256)
	b.WriteString("  };\n")
	b.WriteString("  pkgs = import nixpkgs_src { config = {}; };\n")
	fmt.Fprintf(b, "  python = pkgs.%s;\n", bl.pythonAttr)
}

// overlayHeader opens the packageOverrides scaffolding for the interpreter.
// The rec scope lets sibling overlay definitions reference each other by
// bare name.
type overlayHeader struct {
	pythonAttr string
}

func (bl overlayHeader) render(b *strings.Builder) {
	b.WriteString("  overlay = self: super: {\n")
	fmt.Fprintf(b, "    %s = super.%s.override {\n", bl.pythonAttr, bl.pythonAttr)
	b.WriteString("      packageOverrides = python-self: python-super: rec {\n")
}

// overrideBlock patches a recipe that already exists in the base repository:
// it relabels it to the resolved version, swaps the source-fetch directive,
// and appends any extra inputs onto whatever the base recipe declares.
type overrideBlock struct {
	key             string // canonical base-repository identifier
	name            string
	version         string
	buildInputs     string
	propBuildInputs string
	disableChecks   bool
}

func (bl overrideBlock) render(b *strings.Builder) {
	fmt.Fprintf(b, "        %s = python-super.%s.overrideAttrs ( oldAttrs: {\n", bl.key, bl.key)
	fmt.Fprintf(b, "          name = \"%s-%s\";\n", bl.name, bl.version)
	fmt.Fprintf(b, "          src = fetchPypi \"%s\" \"%s\";\n", bl.name, bl.version)
	if bl.buildInputs != "" {
		fmt.Fprintf(b, "          buildInputs = oldAttrs.buildInputs ++ [ %s ];\n", bl.buildInputs)
	}
	if bl.propBuildInputs != "" {
		fmt.Fprintf(b, "          propagatedBuildInputs = oldAttrs.propagatedBuildInputs ++ [ %s ];\n", bl.propBuildInputs)
	}
	if bl.disableChecks {
		b.WriteString("          doCheck = false;\n")
		b.WriteString("          doInstallCheck = false;\n")
	}
	b.WriteString("        });\n")
}

// freshBlock builds a package from source; it inherits nothing from the base
// repository.
type freshBlock struct {
	name            string
	version         string
	buildInputs     string
	propBuildInputs string
	disableChecks   bool
}

func (bl freshBlock) render(b *strings.Builder) {
	fmt.Fprintf(b, "        %s = python.pkgs.buildPythonPackage {\n", bl.name)
	fmt.Fprintf(b, "          name = \"%s-%s\";\n", bl.name, bl.version)
	fmt.Fprintf(b, "          src = fetchPypi \"%s\" \"%s\";\n", bl.name, bl.version)
	if bl.buildInputs != "" {
		fmt.Fprintf(b, "          buildInputs = [ %s ];\n", bl.buildInputs)
	}
	if bl.propBuildInputs != "" {
		fmt.Fprintf(b, "          propagatedBuildInputs = [ %s ];\n", bl.propBuildInputs)
	}
	if bl.disableChecks {
		b.WriteString("          doCheck = false;\n")
		b.WriteString("          doInstallCheck = false;\n")
	}
	b.WriteString("        };\n")
}

// aliasLine binds one non-canonical colliding identifier to the canonical
// override, so every reference into the base repository lands on the single
// overridden definition.
type aliasLine struct {
	key       string
	canonical string
}

func (bl aliasLine) render(b *strings.Builder) {
	fmt.Fprintf(b, "        %s = %s;\n", bl.key, bl.canonical)
}

// overlayFooter closes the packageOverrides scaffolding.
type overlayFooter struct{}

func (overlayFooter) render(b *strings.Builder) {
	b.WriteString("      };\n")
	b.WriteString("    };\n")
	b.WriteString("  };\n")
}

// envBlock is the trailing expression: import the base repository with the
// overlay applied and construct an environment holding the root packages.
type envBlock struct {
	pythonAttr string
	roots      []string
}

func (bl envBlock) render(b *strings.Builder) {
	b.WriteString("in\n")
	b.WriteString("\n")
	b.WriteString("with import nixpkgs_src { overlays = [ overlay ]; };\n")
	b.WriteString("\n")
	fmt.Fprintf(b, "%s.withPackages (ps: with ps; [\n", bl.pythonAttr)
	for _, root := range bl.roots {
		fmt.Fprintf(b, "  %s\n", root)
	}
	b.WriteString("])\n")
}
