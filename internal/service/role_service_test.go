package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"go-account-api/internal/domain"
	"go-account-api/internal/domain/dto"
)

// create admin → ok, create admin again → conflict, get by id → same role back
func TestRoleService_CreateConflictGet(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), nil, 0, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.RoleCreate{Name: "admin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !created.IsActive {
		t.Fatalf("expected isActive default true")
	}

	if _, err := svc.Create(ctx, &dto.RoleCreate{Name: "admin"}); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.Name != "admin" || !got.IsActive {
		t.Fatalf("unexpected role: %+v", got)
	}
}

func TestRoleService_GetByID_Absent(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), nil, 0, zap.NewNop())
	got, err := svc.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRoleService_List(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), nil, 0, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"viewer", "admin", "editor"} {
		if _, err := svc.Create(ctx, &dto.RoleCreate{Name: name}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	out, err := svc.List(ctx, dto.PageQuery{Page: 1, PageSize: 2, Ascending: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out.Total != 3 {
		t.Fatalf("total = %d, want 3", out.Total)
	}
	rows := out.Data.([]dto.RoleResponse)
	if len(rows) != 2 || rows[0].Name != "admin" || rows[1].Name != "editor" {
		t.Fatalf("unexpected first page: %+v", rows)
	}
}
