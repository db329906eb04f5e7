package usecase

import (
	"context"
	"io"
)

// FirebaseAuthClient is the slice of Firebase Auth the use cases need.
type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUserEmail(ctx context.Context, uid string) (email, displayName string, err error)
	DeleteUser(ctx context.Context, uid string) error
}

// FileUploader stores a blob and returns its public download URL.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

// LivePublisher pushes a payload to a connected user, if any. Delivery is
// best effort; offline users are skipped silently.
type LivePublisher interface {
	SendToUser(userID string, message []byte)
}
