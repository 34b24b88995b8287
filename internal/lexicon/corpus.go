// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// corpus.go - The built-in conversational corpus for banter.
//
// Keys are stored in normalized form (trimmed, ASCII-lowercased) so lookups
// against util.Normalize output never miss on case or padding.
package lexicon

// defaultResponses returns the canonical phrase -> response table.
func defaultResponses() map[string]string {
	return map[string]string{
		// Greetings
		"hi":           "Hello to you too!",
		"hello":        "Hi there! How can I help you today?",
		"hey":          "Hey! What's on your mind?",
		"good morning": "Good morning! Hope you're having a great start!",
		"good night":   "Good night! Sweet dreams!",

		// Small talk
		"how are you?":          "Running at full clock speed, so pretty great! And you?",
		"what's up?":            "Just processing bits and bytes. You?",
		"what's your name?":     "I'm banter, your terminal chat companion.",
		"who are you?":          "I'm a little pattern-matching chat program that lives in your terminal.",
		"what are you?":         "A console chatbot. Think of me as a very talkative terminal program.",
		"are we friends?":       "Absolutely! Friends don't let friends code alone.",
		"do you have feelings?": "I only cry when I see stack traces.",
		"are you a robot?":      "Technically yes, but I prefer 'digital conversationalist'.",
		"are you human?":        "Nope! 100% compiled code. No coffee needed (but I wouldn't say no).",
		"do you have a brain?":  "I have loops, maps, and a lot of if statements. Close enough?",
		"who made you?":         "A programmer with too much free time and a fondness for terminals.",

		// Knowledge
		"can you browse the net?":        "No, I live entirely in your terminal. No internet access here!",
		"what are the main colors?":      "The 11 basic colors are: black, white, red, green, yellow, blue, pink, gray, brown, orange, and purple.",
		"what is go?":                    "Go is a programming language designed at Google for simple, reliable, and efficient software. It powers servers, CLIs, and... me!",
		"what is a computer program?":    "A computer program is a sequence of instructions a computer can execute. In human-readable form it's called source code. You're talking to one right now!",
		"can you speak other languages?": "Un poco espanol, mi amigo! ...Okay, just English really.",
		"can you understand binary?":     "01001000 01101001! Just kidding. I'm a program, not the CPU itself.",
		"how do you understand me?":      "I match your input against patterns I know. Not true understanding, more like a really enthusiastic lookup table!",

		// Meta
		"thank you": "You're welcome! Happy to help.",
		"thanks":    "Anytime! That's what I'm here for.",
		"sorry":     "No worries at all! What can I do for you?",
		"lol":       "Glad I could make you laugh!",
		"haha":      "I try my best!",
		"nice":      "Thanks! You're pretty nice yourself!",
		"cool":      "Right? I think so too.",
		"yes":       "Great! What else would you like to talk about?",
		"no":        "Alright, no problem. Anything else?",
		"ok":        "Okay! I'm here if you need me.",
		"okay":      "Sure thing! What's next?",
	}
}

// defaultAliases returns the alternative phrasing -> canonical key table.
// Every target must exist in defaultResponses; NewStore enforces this.
func defaultAliases() map[string]string {
	return map[string]string{
		"sup":       "what's up?",
		"what's up": "what's up?",
		"whats up":  "what's up?",
		"howdy":     "hi",
		"yo":        "hey",
		"greetings": "hello",

		"what is your name?": "what's your name?",
		"what is your name":  "what's your name?",
		"whats your name":    "what's your name?",
		"your name?":         "what's your name?",

		"who are you":  "who are you?",
		"what are you": "what are you?",

		"are you a bot?": "are you a robot?",
		"are you a bot":  "are you a robot?",
		"are you real?":  "are you human?",
		"are you real":   "are you human?",

		"who created you?": "who made you?",
		"who created you":  "who made you?",

		"what is go":      "what is go?",
		"what is golang?": "what is go?",
		"what is golang":  "what is go?",
		"what's go?":      "what is go?",

		"thx":     "thanks",
		"ty":      "thanks",
		"thank u": "thank you",
		"gm":      "good morning",
		"gn":      "good night",
	}
}

// defaultJokes returns the joke content list.
func defaultJokes() []string {
	return []string{
		"Why do programmers prefer dark mode? Because light attracts bugs!",
		"A SQL query walks into a bar, sees two tables, and asks... 'Can I JOIN you?'",
		"There are only 10 types of people: those who understand binary and those who don't.",
		"Why was the JavaScript developer sad? Because he didn't Node how to Express himself.",
		"What's a programmer's favorite hangout place? Foo Bar!",
		"How many programmers does it take to change a light bulb? None, that's a hardware problem.",
		"A goroutine walks into a bar... and 10,000 of its friends show up a microsecond later.",
		"A programmer's spouse says: 'Buy a loaf of bread. If they have eggs, buy a dozen.' They come home with 12 loaves of bread.",
		"!false -- it's funny because it's true.",
		"Debugging: being the detective in a crime movie where you are also the murderer.",
	}
}

// defaultFacts returns the fact content list.
func defaultFacts() []string {
	return []string{
		"The first computer bug was an actual bug: a moth found in a Harvard Mark II computer in 1947.",
		"The first programmer in history was Ada Lovelace, who wrote algorithms for Charles Babbage's Analytical Engine in the 1840s.",
		"About 90% of the world's currency exists only on computers, not as physical cash.",
		"The QWERTY keyboard layout was designed in 1873 to prevent typewriter jams, not for typing speed.",
		"The first 1GB hard drive (1980) weighed about 550 pounds and cost $40,000.",
		"There are approximately 700 different programming languages in existence.",
		"The first computer mouse was made of wood, invented by Doug Engelbart in 1964.",
		"Go's mascot, the gopher, was originally drawn by Renee French for a radio station promo.",
		"Go was conceived at Google in 2007 while its designers waited on a 45-minute C++ build.",
		"The first website ever created is still online: info.cern.ch, built by Tim Berners-Lee in 1991.",
	}
}
