package overlay_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports/mocks"
	"go.trai.ch/pynix/internal/engine/overlay"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// candidate is one index entry backing the stub: the identifier under which
// the base repository carries the package, and the version it pins.
type candidate struct {
	key     string
	version string
}

// stubIndex wires a MockPackageIndex from a name-keyed candidate snapshot so
// tests can describe the index as data instead of call expectations.
func stubIndex(ctrl *gomock.Controller, snapshot map[string][]candidate) *mocks.MockPackageIndex {
	index := mocks.NewMockPackageIndex(ctrl)
	index.EXPECT().HasPackage(gomock.Any()).DoAndReturn(func(name string) bool {
		return len(snapshot[name]) > 0
	}).AnyTimes()
	index.EXPECT().HasCandidate(gomock.Any(), gomock.Any()).DoAndReturn(func(name, version string) bool {
		for _, c := range snapshot[name] {
			if c.version == version {
				return true
			}
		}
		return false
	}).AnyTimes()
	index.EXPECT().HasMultipleCandidates(gomock.Any()).DoAndReturn(func(name string) bool {
		return len(snapshot[name]) > 1
	}).AnyTimes()
	index.EXPECT().AllCandidates(gomock.Any()).DoAndReturn(func(name string) []string {
		keys := make([]string, 0, len(snapshot[name]))
		for _, c := range snapshot[name] {
			keys = append(keys, c.key)
		}
		return keys
	}).AnyTimes()
	index.EXPECT().FindBestCandidate(gomock.Any(), gomock.Any()).DoAndReturn(func(name, version string) (string, error) {
		for _, c := range snapshot[name] {
			if c.version == version {
				return c.key, nil
			}
		}
		if len(snapshot[name]) > 0 {
			return snapshot[name][0].key, nil
		}
		return "", nil
	}).AnyTimes()
	return index
}

func addPkg(t *testing.T, s *domain.PkgSet, name, version string, isRoot bool, buildInputs, propInputs []string) {
	t.Helper()
	p := &domain.ResolvedPkg{
		Name:    domain.NewInternedString(name),
		Version: domain.NewInternedString(version),
		IsRoot:  isRoot,
	}
	for _, in := range buildInputs {
		p.BuildInputs = append(p.BuildInputs, domain.NewInternedString(in))
	}
	for _, in := range propInputs {
		p.PropBuildInputs = append(p.PropBuildInputs, domain.NewInternedString(in))
	}
	if err := s.Add(p); err != nil {
		t.Fatalf("failed to add %s: %v", name, err)
	}
}

func testOpts() domain.GenerateOptions {
	return domain.GenerateOptions{
		PythonAttr:    "python38",
		NixpkgsRev:    "nixrev",
		NixpkgsSHA256: "nixsha",
		FetcherRev:    "fetchrev",
		FetcherSHA256: "fetchsha",
	}
}

func TestGenerate_Golden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// requests is carried at an older version, urllib3 matches exactly and
	// certifi is absent from the index entirely.
	index := stubIndex(ctrl, map[string][]candidate{
		"requests": {{key: "requests", version: "2.24.0"}},
		"urllib3":  {{key: "urllib3", version: "1.26.4"}},
	})

	set := domain.NewPkgSet()
	addPkg(t, set, "requests", "2.25.1", true, nil, []string{"urllib3", "certifi"})
	addPkg(t, set, "urllib3", "1.26.4", false, nil, nil)
	addPkg(t, set, "certifi", "2020.12.5", false, nil, nil)

	got, err := overlay.New(index).Generate(set, testOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `let
  fetchPypiSrc = builtins.fetchTarball {
    name = "nix-pypi-fetcher";
    url = "https://github.com/DavHau/nix-pypi-fetcher/tarball/fetchrev";
    # Hash obtained using ` + "`nix-prefetch-url --unpack <url>`" + `
    sha256 = "fetchsha";
  };
  fetchPypi = import (fetchPypiSrc);
  nixpkgs_src = builtins.fetchTarball {
    name = "nixpkgs";
    url = "https://github.com/nixos/nixpkgs/tarball/nixrev";
    sha256 = "nixsha";
  };
  pkgs = import nixpkgs_src { config = {}; };
  python = pkgs.python38;
  overlay = self: super: {
    python38 = super.python38.override {
      packageOverrides = python-self: python-super: rec {
        certifi = python.pkgs.buildPythonPackage {
          name = "certifi-2020.12.5";
          src = fetchPypi "certifi" "2020.12.5";
        };
        requests = python-super.requests.overrideAttrs ( oldAttrs: {
          name = "requests-2.25.1";
          src = fetchPypi "requests" "2.25.1";
          propagatedBuildInputs = oldAttrs.propagatedBuildInputs ++ [ certifi python-self.urllib3 ];
        });
      };
    };
  };
in

with import nixpkgs_src { overlays = [ overlay ]; };

python38.withPackages (ps: with ps; [
  requests
])
`
	if got != want {
		t.Errorf("generated expression mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestGenerate_ExactMatchesProduceNoOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := stubIndex(ctrl, map[string][]candidate{
		"flask": {{key: "flask", version: "1.1.2"}},
		"click": {{key: "click", version: "7.1.2"}},
	})

	set := domain.NewPkgSet()
	addPkg(t, set, "flask", "1.1.2", true, nil, []string{"click"})
	addPkg(t, set, "click", "7.1.2", false, nil, nil)

	got, err := overlay.New(index).Generate(set, testOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "overrideAttrs") {
		t.Error("expected no override blocks when every package matches the index exactly")
	}
	if strings.Contains(got, "buildPythonPackage") {
		t.Error("expected no fresh definitions when every package matches the index exactly")
	}
	if !strings.Contains(got, "  flask\n") {
		t.Error("expected root package in the environment expression")
	}
}

func TestGenerate_CollisionEmitsAliases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Two index identifiers carry pillow; the non-canonical one must be
	// aliased onto the override so no stale definition survives.
	index := stubIndex(ctrl, map[string][]candidate{
		"pillow": {
			{key: "pillow", version: "8.2.0"},
			{key: "pillow2", version: "7.0.0"},
		},
	})

	set := domain.NewPkgSet()
	addPkg(t, set, "pillow", "8.2.0", true, nil, nil)

	got, err := overlay.New(index).Generate(set, testOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "pillow = python-super.pillow.overrideAttrs") {
		t.Error("expected canonical identifier to be overridden")
	}
	if !strings.Contains(got, "        pillow2 = pillow;\n") {
		t.Error("expected alias binding the colliding identifier to the canonical override")
	}
}

func TestGenerate_DisableChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := stubIndex(ctrl, map[string][]candidate{
		"requests": {{key: "requests", version: "2.24.0"}},
	})

	set := domain.NewPkgSet()
	addPkg(t, set, "requests", "2.25.1", true, nil, nil)
	addPkg(t, set, "certifi", "2020.12.5", false, nil, nil)

	opts := testOpts()
	opts.DisableChecks = true

	got, err := overlay.New(index).Generate(set, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both the override and the fresh definition carry the check switches
	if strings.Count(got, "doCheck = false;") != 2 {
		t.Errorf("expected doCheck = false in every generated block, got:\n%s", got)
	}
	if strings.Count(got, "doInstallCheck = false;") != 2 {
		t.Errorf("expected doInstallCheck = false in every generated block, got:\n%s", got)
	}
}

func TestGenerate_MissingDependencyReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := stubIndex(ctrl, map[string][]candidate{})

	set := domain.NewPkgSet()
	addPkg(t, set, "requests", "2.25.1", true, nil, []string{"urllib3"})

	_, err := overlay.New(index).Generate(set, testOpts())
	if err == nil {
		t.Fatal("expected error for missing dependency reference, got nil")
	}
	if !strings.Contains(err.Error(), domain.ErrMissingDependencyReference.Error()) {
		t.Errorf("expected missing dependency reference error, got: %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if pkg, ok := meta["package"].(string); !ok || pkg != "requests" {
		t.Errorf("expected metadata package=requests, got %v", meta["package"])
	}
	if input, ok := meta["input"].(string); !ok || input != "urllib3" {
		t.Errorf("expected metadata input=urllib3, got %v", meta["input"])
	}
}

func TestGenerate_IndexLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	index.EXPECT().HasCandidate("numpy", "1.20.2").Return(true).AnyTimes()
	index.EXPECT().HasMultipleCandidates("numpy").Return(false).AnyTimes()
	index.EXPECT().HasPackage("numpy").Return(true).AnyTimes()
	index.EXPECT().FindBestCandidate("numpy", "1.20.2").
		Return("", errors.New("snapshot does not carry numpy")).AnyTimes()

	set := domain.NewPkgSet()
	addPkg(t, set, "numpy", "1.20.2", true, nil, nil)

	_, err := overlay.New(index).Generate(set, testOpts())
	if err == nil {
		t.Fatal("expected error for inconsistent index, got nil")
	}
	if !strings.Contains(err.Error(), domain.ErrIndexInconsistent.Error()) {
		t.Errorf("expected index inconsistency error, got: %v", err)
	}
}

func TestGenerate_EmptyCanonicalIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	index.EXPECT().HasCandidate("numpy", "1.20.2").Return(true).AnyTimes()
	index.EXPECT().HasMultipleCandidates("numpy").Return(false).AnyTimes()
	index.EXPECT().HasPackage("numpy").Return(true).AnyTimes()
	index.EXPECT().FindBestCandidate("numpy", "1.20.2").Return("", nil).AnyTimes()

	set := domain.NewPkgSet()
	addPkg(t, set, "numpy", "1.20.2", true, nil, nil)

	_, err := overlay.New(index).Generate(set, testOpts())
	if err == nil {
		t.Fatal("expected error for empty canonical identifier, got nil")
	}
	if !strings.Contains(err.Error(), domain.ErrIndexInconsistent.Error()) {
		t.Errorf("expected index inconsistency error, got: %v", err)
	}
}

func TestGenerate_InputsSortedAndDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := stubIndex(ctrl, map[string][]candidate{
		"zope-interface": {{key: "zope_interface", version: "5.4.0"}},
	})

	set := domain.NewPkgSet()
	addPkg(t, set, "twisted", "21.2.0", true,
		[]string{"incremental", "automat"},
		[]string{"zope-interface", "incremental"})
	addPkg(t, set, "incremental", "21.3.0", false, nil, nil)
	addPkg(t, set, "automat", "20.2.0", false, nil, nil)
	addPkg(t, set, "zope-interface", "5.4.0", false, nil, nil)

	got, err := overlay.New(index).Generate(set, testOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Local references come first in sorted order, index-drawn ones after,
	// prefixed with the index namespace.
	if !strings.Contains(got, "buildInputs = [ automat incremental ];") {
		t.Errorf("expected sorted local build inputs, got:\n%s", got)
	}
	if !strings.Contains(got, "propagatedBuildInputs = [ incremental python-self.zope_interface ];") {
		t.Errorf("expected local inputs before namespaced index inputs, got:\n%s", got)
	}
}
