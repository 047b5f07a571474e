package service

// Canned SMS copies sent by the resolver. Keep each under a single
// segment-friendly length where possible; carriers split long bodies.
const (
	helpText = "Relay keeps your co-parenting texts civil. Text your message " +
		"and we'll offer three ways to say it. Reply 1, 2, or 3 to pick one, " +
		"or write your own. Commands: STATUS, STOP, START, HELP."

	welcomeErrorText = "Welcome to Relay! To get set up, text us your name, " +
		"your co-parent's name, and their phone number. For example: " +
		"\"I'm Jordan and my co-parent is Sam 555-123-4567\"."

	setupAckText = "Thanks! We've got your co-parent's number on file. " +
		"Check your email to finish activating your subscription."

	subscriptionRequiredText = "Your Relay service isn't active yet. Finish " +
		"signing up from the link we emailed you, or text HELP for assistance."

	activationConfirmText = "You're all set! Relay is now active. Text us a " +
		"message for your co-parent whenever you're ready."

	resumedText = "Relay is active. Text us a message for your co-parent " +
		"whenever you're ready."

	stopConfirmText = "Relay is paused. You won't receive filtered messages " +
		"until you text START."

	sentConfirmText = "Sent. We'll let you know when your co-parent replies."

	pickOptionText = "We couldn't send that as written. Reply 1, 2, or 3 to " +
		"use one of the suggested responses."

	apologyText = "Sorry, something went wrong on our end. Please try again " +
		"in a few minutes."

	nothingPendingText = "There's nothing waiting for a reply right now. " +
		"Text us a new message for your co-parent to get started."
)
