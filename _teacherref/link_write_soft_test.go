package hdf5

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateSoftLink_BasicCreation tests basic soft link creation API.
// MVP v0.11.5-beta: Tests that API exists and returns not-implemented error.
func TestCreateSoftLink_BasicCreation(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_basic.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	// Create /data group
	_, err = fw.CreateGroup("/data")
	require.NoError(t, err)

	// Create a dataset
	ds, err := fw.CreateDataset("/data/temperature", Float64, []uint64{5})
	require.NoError(t, err)
	require.NotNil(t, ds)

	data := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	err = ds.Write(data)
	require.NoError(t, err)

	// Try to create soft link to dataset
	// MVP v0.11.5-beta: Should return not-implemented error
	err = fw.CreateSoftLink("/data/temp_link", "/data/temperature")
	assert.Error(t, err, "Soft link creation should return not-implemented error in MVP")
	assert.Contains(t, err.Error(), "not yet implemented", "Error should indicate feature not yet implemented")
}

// TestCreateSoftLink_ToGroup tests soft link to a group (validation).
// MVP v0.11.5-beta: Tests that API validates paths before returning not-implemented.
func TestCreateSoftLink_ToGroup(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_group.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	// Create groups
	_, err = fw.CreateGroup("/group1")
	require.NoError(t, err)
	_, err = fw.CreateGroup("/links")
	require.NoError(t, err)

	// Try to create soft link to group
	// MVP v0.11.5-beta: Should validate paths, then return not-implemented
	err = fw.CreateSoftLink("/links/group_link", "/group1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not yet implemented")
}

// TestCreateSoftLink_DanglingLink tests creating a soft link to a non-existent target.
// This should be allowed in HDF5 - the target can be created later.
// MVP v0.11.5-beta: Tests validation accepts dangling targets.
func TestCreateSoftLink_DanglingLink(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_dangling.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	// Try to create soft link to non-existent target
	// MVP: Should pass validation (dangling links allowed), then return not-implemented
	err = fw.CreateSoftLink("/link_to_future", "/data/future_dataset")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not yet implemented", "Should get not-implemented, not validation error")
}

// TestCreateSoftLink_RelativePath tests that relative paths are rejected.
func TestCreateSoftLink_RelativePath(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_relative.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	// Try to create soft link with relative target path
	err = fw.CreateSoftLink("/link", "relative/path")
	assert.Error(t, err, "Should reject relative target path")
	assert.Contains(t, err.Error(), "must be absolute", "Error should mention absolute path requirement")

	// Try with relative link path
	err = fw.CreateSoftLink("relative/link", "/data/target")
	assert.Error(t, err, "Should reject relative link path")
	assert.Contains(t, err.Error(), "must start with '/'", "Error should mention leading slash")
}

// TestCreateSoftLink_InvalidLinkPath tests various invalid link path formats.
func TestCreateSoftLink_InvalidLinkPath(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_invalid.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	tests := []struct {
		name       string
		linkPath   string
		targetPath string
		errMsg     string
	}{
		{
			name:       "empty link path",
			linkPath:   "",
			targetPath: "/data/target",
			errMsg:     "cannot be empty",
		},
		{
			name:       "no leading slash in link",
			linkPath:   "link",
			targetPath: "/data/target",
			errMsg:     "must start with '/'",
		},
		{
			name:       "root link path",
			linkPath:   "/",
			targetPath: "/data/target",
			errMsg:     "cannot create link to root",
		},
		{
			name:       "consecutive slashes in link",
			linkPath:   "/group//link",
			targetPath: "/data/target",
			errMsg:     "consecutive slashes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fw.CreateSoftLink(tt.linkPath, tt.targetPath)
			assert.Error(t, err, "Should fail for invalid link path")
			assert.Contains(t, err.Error(), tt.errMsg, "Error message should be descriptive")
		})
	}
}

// TestCreateSoftLink_TargetPathFormat tests various target path formats.
func TestCreateSoftLink_TargetPathFormat(t *testing.T) {
	tempDir := t.TempDir()
	filename := filepath.Join(tempDir, "test_softlink_target_fmt.h5")

	fw, err := CreateForWrite(filename, CreateTruncate)
	require.NoError(t, err)
	defer fw.Close()

	tests := []struct {
		name       string
		targetPath string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid absolute path",
			targetPath: "/data/dataset1",
			wantErr:    true, // MVP: not implemented
			errMsg:     "not yet implemented",
		},
		{
			name:       "valid nested path",
			targetPath: "/group1/group2/group3/dataset",
			wantErr:    true, // MVP: not implemented
			errMsg:     "not yet implemented",
		},
		{
			name:       "empty target path",
			targetPath: "",
			wantErr:    true,
			errMsg:     "cannot be empty",
		},
		{
			name:       "relative target path",
			targetPath: "relative/path",
			wantErr:    true,
			errMsg:     "must be absolute",
		},
		{
			name:       "consecutive slashes in target",
			targetPath: "/data//dataset",
			wantErr:    true,
			errMsg:     "consecutive slashes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linkPath := "/link_" + tt.name
			err := fw.CreateSoftLink(linkPath, tt.targetPath)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateSoftLinkTargetPath tests target path validation function.
func TestValidateSoftLinkTargetPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid absolute path",
			path:    "/data/dataset",
			wantErr: false,
		},
		{
			name:    "valid nested path",
			path:    "/a/b/c/d",
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "relative path",
			path:    "relative/path",
			wantErr: true,
			errMsg:  "must be absolute",
		},
		{
			name:    "consecutive slashes",
			path:    "/data//dataset",
			wantErr: true,
			errMsg:  "consecutive slashes",
		},
		{
			name:    "valid single level",
			path:    "/dataset",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSoftLinkTargetPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestResolveSoftLink_NotImplemented tests that resolution is not yet implemented.
// MVP v0.11.5-beta: Soft link resolution will be added in v0.12.0.
func TestResolveSoftLink_NotImplemented(t *testing.T) {
	// Soft link resolution is not implemented in MVP v0.11.5-beta
	// This test documents the planned API for v0.12.0
	t.Skip("Soft link resolution not implemented in MVP v0.11.5-beta (planned for v0.12.0)")
}

// Future tests (skipped in MVP v0.11.5-beta):
// - TestResolveSoftLink_Simple
// - TestResolveSoftLink_Chain
// - TestResolveSoftLink_CircularReference
// - TestResolveSoftLink_MaxDepth
// - TestResolveSoftLink_DanglingLink
// - TestSoftLink_ReadAfterCreate
// - TestCreateSoftLink_ParentNotExists
// - TestCreateSoftLink_MultipleLinks
