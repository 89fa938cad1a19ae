package app

var Examples = []string{
	"What constitutes murder under Nigerian criminal law?",
	"Explain the requirements for a valid contract",
	"What are the defenses to defamation?",
	"How does the statute of limitations work in tort cases?",
	"What is the difference between theft and robbery?",
	"Explain the concept of mens rea in criminal law",
}

const Disclaimer = "Disclaimer: This AI assistant provides legal information for educational purposes only. " +
	"It does not constitute legal advice. Always consult a qualified attorney for legal matters."
