package handler

import (
	"foreign/internal/usecase"
)

var (
	profileHandler      *ProfileHandler
	postHandler         *PostHandler
	forumHandler        *ForumHandler
	friendHandler       *FriendHandler
	locationHandler     *LocationHandler
	notificationHandler *NotificationHandler
	adminHandler        *AdminHandler
)

func Setup(
	profileUseCase *usecase.ProfileUseCase,
	session *usecase.ProfileSession,
	feedUseCase *usecase.FeedUseCase,
	postUseCase *usecase.PostUseCase,
	forumUseCase *usecase.ForumUseCase,
	friendUseCase *usecase.FriendUseCase,
	locationUseCase *usecase.LocationUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	profileHandler = NewProfileHandler(profileUseCase, session)
	postHandler = NewPostHandler(postUseCase, feedUseCase, profileUseCase)
	forumHandler = NewForumHandler(forumUseCase)
	friendHandler = NewFriendHandler(friendUseCase)
	locationHandler = NewLocationHandler(locationUseCase, feedUseCase, profileUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetForumHandler() *ForumHandler {
	return forumHandler
}

func GetFriendHandler() *FriendHandler {
	return friendHandler
}

func GetLocationHandler() *LocationHandler {
	return locationHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
